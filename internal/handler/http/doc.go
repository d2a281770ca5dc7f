// Package http implements the HTTP command surface of the vault server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer. Every
// failure is written as a single {"error": "..."} body.
package http
