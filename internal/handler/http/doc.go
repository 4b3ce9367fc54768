// Package http implements the REST transport of the portfolio server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, CORS,
// compression, login throttling and bearer-token authorization of every
// write are handled in this package before requests are delegated to the
// service layer.
package http
