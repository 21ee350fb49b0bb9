package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps failures to reach the backend at all.
	ErrTransport = errors.New("server unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrDecodingResponse is returned when a 2xx body is not what the API
	// promises.
	ErrDecodingResponse = errors.New("error decoding response")
)

// APIError is a non-success response of the backend.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the server-supplied text, suitable for showing to the user.
	Message string

	kind error
}

// NewAPIError builds the error for a response with status and message.
func NewAPIError(status int, message string) *APIError {
	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
		if status >= http.StatusInternalServerError {
			kind = ErrInternalServerError
		}
	}

	return &APIError{Status: status, Message: message, kind: kind}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Unwrap returns the status sentinel, e.g. [ErrNotFound].
func (e *APIError) Unwrap() error {
	return e.kind
}
