// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, key fingerprints,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-rsa-vault/models"
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

// CallerCtxKey is the key used to store the authenticated [models.Caller] in
// the request context.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithCaller(ctx, models.Caller{ID: "user-1"})
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the caller stored by the auth middleware.
//
// ok is false when the value is missing, has an unexpected type, or carries
// an empty owner ID.
//
// Example usage:
//
//	caller, ok := utils.GetCallerFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetCallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	if !ok || !caller.Authenticated() {
		return models.Caller{}, false
	}
	return caller, true
}
