// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of directory users on top of
// database/sql. PostgreSQL (through the pgx stdlib driver) and SQLite
// (through go-sqlite3) are supported; queries are built with squirrel in the
// placeholder format of the connected dialect.
package store

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence contract for directory users.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the user with id or ErrUserNotFound.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create inserts a user and returns it with the server-assigned fields.
	Create(ctx context.Context, input models.UserInput) (models.User, error)

	// Update replaces name and e-mail of the user with id and returns the
	// stored result.
	Update(ctx context.Context, id int64, input models.UserInput) (models.User, error)

	// Delete removes the user with id.
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator maps driver-specific errors onto the few classes the
// repositories react to.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
