// Package server runs the HTTP API of go-waste-tracker.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
