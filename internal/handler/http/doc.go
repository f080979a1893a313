// Package http implements the HTTP transport layer of go-waste-tracker.
//
// It exposes the admin dashboard API, the mobile scanner API and the
// reverse-geocode endpoint. Authentication, request tracing, access logging,
// response compression and per-request timeouts are handled in this package
// before requests are delegated to the service layer.
package http
