// Package server runs the development Auth API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
