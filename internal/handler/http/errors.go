// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before the service layer
// is involved. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("request body is not valid JSON")

	// ErrInvalidUserIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserIDParam = errors.New("user id must be a positive integer")
)
