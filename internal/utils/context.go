// Package utils provides general-purpose helpers shared by the client
// packages: context keys, HTTP client construction, request identifiers and
// JWT inspection.
package utils

import (
	"context"

	"github.com/google/uuid"
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

// RequestIDCtxKey is the key under which the logical request identifier is
// stored in the context. All attempts of one logical request share it.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id as the logical request
// identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the logical request identifier from the
// context.
//
// Returns the identifier and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// NewRequestID returns a time-ordered UUIDv7 string, falling back to a
// random UUIDv4 when the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
