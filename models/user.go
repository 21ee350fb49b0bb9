package models

import "strings"

// User is one directory entry as exposed by the backend.
//
// ID and CreatedAt are assigned by the server; the client never changes a
// User directly and goes through explicit update calls instead.
type User struct {
	// ID is the opaque, unique, server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name of the user. Never empty for stored records.
	Name string `json:"name"`

	// Email is the contact address of the user. Unique across the directory.
	Email string `json:"email"`

	// CreatedAt is the creation instant. It is optional: older records and
	// some backends omit it, and malformed values decode as not Valid.
	CreatedAt Timestamp `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Input returns the mutable part of u as a [UserInput].
func (u User) Input() UserInput {
	return UserInput{Name: u.Name, Email: u.Email}
}

// UserInput carries the client-editable fields of a user for create and
// update calls.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Trimmed returns in with surrounding whitespace removed from both fields.
func (in UserInput) Trimmed() UserInput {
	return UserInput{Name: strings.TrimSpace(in.Name), Email: strings.TrimSpace(in.Email)}
}
