// Package http implements the development Auth API over HTTP.
//
// It exposes the chi router, the auth handlers and the middleware stack
// (panic recovery, request tracing, access logging, compression and bearer
// authentication). Every JSON response carries an "ok" flag; failures carry
// a short "error" message and a matching status code.
package http
