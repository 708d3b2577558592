// Package identity adapts the external identity provider to the rest of the
// application. The provider issues opaque user identifiers; this package
// resolves the identifier for the current request and nothing else. No user
// records are stored locally.
package identity

import (
	"context"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ownerIDCtxKey is the key under which the authenticated user's opaque
// identifier is stored in the request context.
var ownerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying the authenticated user's
// identifier. The HTTP auth middleware calls this after validating the
// session token.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDCtxKey, ownerID)
}

// Resolver resolves the current request to an opaque user identifier.
//
// Implementations must return [ErrUnauthenticated] when no valid identity is
// present; callers must not touch storage on that path.
type Resolver interface {
	CurrentUser(ctx context.Context) (string, error)
}

// contextResolver reads the identifier the auth middleware stored in the
// request context. It is the only Resolver the live server uses.
type contextResolver struct{}

// NewContextResolver constructs a [Resolver] backed by the request context.
func NewContextResolver() Resolver {
	return contextResolver{}
}

// CurrentUser implements [Resolver]. Any non-empty identifier found in ctx is
// treated as valid without further checks; validation happened when the
// session token was parsed.
func (contextResolver) CurrentUser(ctx context.Context) (string, error) {
	ownerID, ok := ctx.Value(ownerIDCtxKey).(string)
	if !ok || ownerID == "" {
		return "", ErrUnauthenticated
	}

	return ownerID, nil
}
