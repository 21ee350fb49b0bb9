// Package server runs the transports of the user-directory backend: the
// REST API and the optional gRPC health endpoint. It handles startup,
// signal handling and graceful shutdown of every enabled transport.
package server
