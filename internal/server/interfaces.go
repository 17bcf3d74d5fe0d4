package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns the first error that ended serving, or nil after a clean
	// shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
