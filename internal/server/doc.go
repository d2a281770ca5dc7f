// Package server runs the HTTP command surface.
//
// It covers startup, signal handling, and graceful shutdown.
package server
