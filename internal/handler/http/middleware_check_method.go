// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/router"
)

// methodNotAllowed is registered on the outer mux via
// [chi.Mux.MethodNotAllowed]. It answers with the same JSON envelope the
// dispatcher uses, so clients see one error format for every path.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, router.MethodNotAllowed())
}

// notFound is registered on the outer mux via [chi.Mux.NotFound].
func notFound(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, router.NotFound())
}

// writeResponse writes resp for handlers living outside the dispatcher and
// logs a failed write with the request logger.
func writeResponse(w http.ResponseWriter, r *http.Request, resp *router.Response) {
	if err := resp.Write(w); err != nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("error writing response")
	}
}
