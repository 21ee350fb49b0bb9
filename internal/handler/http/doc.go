// Package http implements the REST transport of the user-directory backend.
//
// It wires the /users CRUD routes and /api/version onto a chi router. Request
// tracing, access logging and response compression are handled here before
// requests reach the service layer; service and store errors are turned into
// {"error": "..."} bodies with the matching status code.
package http
