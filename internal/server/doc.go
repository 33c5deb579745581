// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns startup, signal handling, and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the HTTP server stops accepting requests, in-flight
// requests are drained and the workers are cancelled.
package server
