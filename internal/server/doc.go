// Package server owns the HTTP server lifecycle: it assembles the listener
// address from the resolved API settings, serves the router, and shuts down
// gracefully on SIGINT, SIGTERM, or SIGQUIT.
package server
