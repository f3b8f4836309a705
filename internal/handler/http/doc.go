// Package http implements the REST transport of the users API.
//
// It wires the chi router, the users resource handlers and the middleware
// chain. Request tracing, access logging, metrics, CORS, rate limiting, input
// sanitization, parameter pollution guarding and response compression are
// applied here before requests are delegated to the service layer. Every
// failure is rendered by a single error writer.
package http
