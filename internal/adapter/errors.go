package adapter

import "errors"

var (
	// ErrUserServiceFailure is returned when the identity service rejects a
	// request or cannot be reached.
	ErrUserServiceFailure = errors.New("user service failure")
)
