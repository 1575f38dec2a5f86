package server

// Server defines the lifecycle of the Auth API server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and the server has shut down.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
