// Package server runs the host side of the capability bridge.
//
// It owns the listener (a unix domain socket, or loopback TCP where sockets
// are unavailable), serves the bridge router on it and shuts down gracefully
// on SIGINT, SIGTERM or SIGQUIT.
package server
