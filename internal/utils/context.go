// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, unique
// identifiers, JSON response writing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestTimeCtxKey is the key under which the request-time middleware stores
// the RFC 3339 timestamp of the incoming request.
var RequestTimeCtxKey = contextKey("requestTime")

// WithRequestTime returns a copy of ctx carrying requestTime.
func WithRequestTime(ctx context.Context, requestTime string) context.Context {
	return context.WithValue(ctx, RequestTimeCtxKey, requestTime)
}

// GetRequestTimeFromContext retrieves the request timestamp from the context.
//
// Returns the timestamp and an ok flag:
//   - ok == true  - value is found and is a string
//   - ok == false - value is missing or has an unexpected type
func GetRequestTimeFromContext(ctx context.Context) (string, bool) {
	requestTime, ok := ctx.Value(RequestTimeCtxKey).(string)
	return requestTime, ok
}
