// Package http implements the HTTP transport layer of the application.
//
// The outer chi mux carries the transport concerns (panic recovery, request
// tracing, access logging, metrics and compression) and serves /metrics and
// /healthz. Everything under /api is handed to a [router.Router] whose routes
// validate their input with schemas and delegate to the service layer.
package http
