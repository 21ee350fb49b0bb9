package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/user-directory/internal/app"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/internal/validators"
)

// errorResponses is checked in order; the first match wins. An empty
// message means the validation error text is sent.
var errorResponses = []struct {
	target  error
	status  int
	message string
}{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidUserIDParam, http.StatusBadRequest, app.MsgInvalidUserID},
	{service.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidUserID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
}

var validationErrors = []error{
	validators.ErrNameRequired,
	validators.ErrNameInvalid,
	validators.ErrEmailRequired,
	validators.ErrEmailInvalid,
	validators.ErrEmailTooLong,
}

// responseFromError returns the status code and the "error" text for err.
func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if !errors.Is(err, r.target) {
			continue
		}
		if r.message == "" {
			return r.status, validationMessage(err)
		}
		return r.status, r.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func validationMessage(err error) string {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return app.MsgInvalidDataProvided
}
