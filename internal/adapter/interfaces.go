// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the user-directory REST API.
//
// [ServerAdapter] decouples the client service layer from the protocol. The
// HTTP implementation ([NewHTTPServerAdapter]) maps transport failures to
// [ErrTransport] and non-2xx responses to [*APIError], which wraps one of the
// status sentinels so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the CRUD surface of the user-directory backend.
type ServerAdapter interface {
	// List returns every user known to the backend, in backend order.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the user with the given id.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create stores a new user and returns it as the backend sees it.
	Create(ctx context.Context, input models.UserInput) (models.User, error)

	// Update replaces name and e-mail of the user with the given id.
	Update(ctx context.Context, id int64, input models.UserInput) (models.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
}
