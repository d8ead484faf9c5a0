// Package server runs the gallery's HTTP server and shuts it down gracefully
// on SIGTERM, SIGINT or SIGQUIT.
package server
