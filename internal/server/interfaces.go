package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or ctx is
	// cancelled, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context)
}

// Runner is a background job that stops when ctx is cancelled.
type Runner interface {
	Run(ctx context.Context)
}
