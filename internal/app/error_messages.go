// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants used by the user-directory
// server handlers and the client UI.
//
// Msg* constants are written into HTTP response bodies by the server.
// UIMsg* constants are shown to the person using the client.
package app

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "user not found"

	// MsgEmailAlreadyExists is returned when another user already uses the
	// submitted e-mail.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgUserCreated = "user created"
	MsgUserDeleted = "user deleted"
)

// Client UI messages.
const (
	UIMsgUserCreated = "User created"
	UIMsgUserUpdated = "User updated"
	UIMsgUserDeleted = "User deleted"
	UIMsgEmailCopied = "E-mail copied to clipboard"

	UIMsgServerUnavailable = "Server is unavailable, check the connection and press r to retry"
	UIMsgUserNotFound      = "User no longer exists"
	UIMsgEmailTaken        = "A user with this e-mail already exists"
	UIMsgInvalidInput      = "The server rejected the data"
	UIMsgServerError       = "Server error, try again later"
	UIMsgClipboardFailed   = "Could not copy to clipboard"
	UIMsgUnexpectedError   = "Something went wrong"
)
