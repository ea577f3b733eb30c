// Package server wires and runs the gateway's transport servers.
//
// The HTTP and gRPC servers run under one errgroup. When the run context is
// cancelled, or any server fails, all of them are shut down within the
// configured shutdown timeout.
package server
