package server

// Server is the lifecycle contract for a transport server owned by this
// package: RunServer blocks until the process is asked to stop, Shutdown
// releases whatever the server holds.
type Server interface {
	// RunServer starts accepting requests and blocks until shutdown.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
