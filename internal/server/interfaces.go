package server

// Server is the process-level lifecycle of the users API.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM, then shuts down.
	RunServer()

	Shutdown()
}
