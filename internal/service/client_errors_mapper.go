// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/app"
)

// UserMessage translates an error of [ClientUserService] into the text of
// a notification. A rejected request shows the message the server sent;
// the fixed texts are used when the server sent none. nil maps to "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return app.UIMsgInvalidInput
	}

	if errors.Is(err, adapter.ErrTransport) ||
		errors.Is(err, context.DeadlineExceeded) {
		return app.UIMsgServerUnavailable
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return app.UIMsgUnexpectedError
	}

	if msg := serverMessage(apiErr); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return app.UIMsgUserNotFound
	case errors.Is(err, adapter.ErrConflict):
		return app.UIMsgEmailTaken
	case errors.Is(err, adapter.ErrInternalServerError):
		return app.UIMsgServerError
	}
	return app.UIMsgInvalidInput
}

// serverMessage returns the text the server put in the response, or "" when
// the adapter only had the status text to go on.
func serverMessage(apiErr *adapter.APIError) string {
	msg := strings.TrimSpace(apiErr.Message)
	if msg == http.StatusText(apiErr.Status) {
		return ""
	}
	return msg
}
