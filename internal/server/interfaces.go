package server

// Server is the lifecycle contract of the backend transports.
//
// RunServer blocks until shutdown is requested; Shutdown stops the servers
// gracefully and frees their resources.
type Server interface {
	RunServer()
	Shutdown()
}
