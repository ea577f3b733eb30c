package server

import "context"

// Server defines the lifecycle contract of the gateway's servers.
type Server interface {
	// Run starts serving and blocks until ctx is cancelled or a server
	// fails. It returns after every server has been shut down.
	Run(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	// Name identifies the transport in logs.
	Name() string

	// RunServer starts serving requests and blocks until the server stops.
	// A stop caused by Shutdown is not an error.
	RunServer() error

	// Shutdown gracefully stops the server, forcing it down when ctx expires.
	Shutdown(ctx context.Context) error
}
