package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
