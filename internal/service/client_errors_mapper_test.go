package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/app"
	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "transport", err: fmt.Errorf("%w: list users: %w", adapter.ErrTransport, errors.New("connection refused")), want: app.UIMsgServerUnavailable},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: app.UIMsgServerUnavailable},
		{name: "validation", err: &ValidationError{Fields: map[string]error{validators.FieldName: validators.ErrNameRequired}}, want: app.UIMsgInvalidInput},
		{name: "not found shows server text", err: adapter.NewAPIError(http.StatusNotFound, "user not found"), want: "user not found"},
		{name: "not found without text", err: adapter.NewAPIError(http.StatusNotFound, ""), want: app.UIMsgUserNotFound},
		{name: "not found with status text only", err: adapter.NewAPIError(http.StatusNotFound, "Not Found"), want: app.UIMsgUserNotFound},
		{name: "conflict shows server text", err: adapter.NewAPIError(http.StatusConflict, "email already exists"), want: "email already exists"},
		{name: "conflict without text", err: adapter.NewAPIError(http.StatusConflict, " "), want: app.UIMsgEmailTaken},
		{name: "internal shows server text", err: adapter.NewAPIError(http.StatusInternalServerError, "internal server error"), want: "internal server error"},
		{name: "internal with status text only", err: adapter.NewAPIError(http.StatusInternalServerError, "Internal Server Error"), want: app.UIMsgServerError},
		{name: "bad gateway with status text only", err: adapter.NewAPIError(http.StatusBadGateway, "Bad Gateway"), want: app.UIMsgServerError},
		{name: "bad request shows server text", err: adapter.NewAPIError(http.StatusBadRequest, "name is required"), want: "name is required"},
		{name: "bad request without text", err: adapter.NewAPIError(http.StatusBadRequest, " "), want: app.UIMsgInvalidInput},
		{name: "other status shows server text", err: adapter.NewAPIError(http.StatusTeapot, "short and stout"), want: "short and stout"},
		{name: "unknown", err: errors.New("boom"), want: app.UIMsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
