// Package utils provides general-purpose helpers used across the server:
// typed context keys, JWT signing and parsing, JSON response writing, the
// REST client and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/inkspire/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal of a
// request is stored.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the authenticated principal.
//
// ok is false for anonymous requests.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// GetUserIDFromContext returns the id of the authenticated principal.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	p, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}
