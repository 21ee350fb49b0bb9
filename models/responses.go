package models

// ErrorResponse is the body of every non-2xx response of the directory API.
// The client shows Error to the user as-is.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by operations that have no resource to send
// back, e.g. DELETE /users/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateUserResponse is the body of a successful POST /users.
type CreateUserResponse struct {
	// Message is a human-readable confirmation.
	Message string `json:"message"`

	// UserID is the identifier assigned to the new record.
	UserID int64 `json:"user_id"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
