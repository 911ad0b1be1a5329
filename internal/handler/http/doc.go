// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// placeholder REST API. Cross-cutting concerns such as request tracing and
// access logging are handled in this package before requests reach the
// handlers. Configuration is read exclusively from the resolved settings
// value the handler is constructed with.
package http
