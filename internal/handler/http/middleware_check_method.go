// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: the caller gets
// the same JSON 404 body as for an unknown path, so an unsupported method
// does not reveal that the route exists.
//
// If the router does match the method and path (a stale routing context
// after a rewrite, for instance) the request is forwarded to the router's
// normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound writes the JSON 404 body used for unknown routes.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
