package server

import "context"

// Server defines the lifecycle contract of the bridge server.
type Server interface {
	// RunServer serves requests and blocks until ctx is done, a stop signal
	// arrives or serving fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error

	// Addr reports where the server listens.
	Addr() string
}
