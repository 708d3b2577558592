package identity

import "errors"

var (
	// ErrUnauthenticated is returned when no valid identity is present on
	// the request. This is a precondition failure, not a transient one;
	// callers must not retry and must not proceed to any data operation.
	ErrUnauthenticated = errors.New("no authenticated user")

	// ErrTokenIsExpired is returned when the session token's exp claim is
	// in the past.
	ErrTokenIsExpired = errors.New("session token is expired")

	// ErrInvalidToken is returned when the session token fails signature or
	// claim validation for any other reason.
	ErrInvalidToken = errors.New("session token is invalid")
)
