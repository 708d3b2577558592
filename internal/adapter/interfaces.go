// Package adapter provides clients for external services.
//
// The primary abstraction is [UserDirectory], which decouples the seed job
// from the identity service's wire protocol. The package ships an HTTP/REST
// implementation ([NewUserDirectory]) built on resty.
package adapter

import (
	"context"

	"github.com/promptkeep/promptkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_directory_mock.go -package=mock

// UserDirectory provisions user accounts in the external identity service.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level failures to
// [ErrUserServiceFailure].
type UserDirectory interface {
	// CreateUser registers the given demo user and returns the opaque
	// identifier assigned by the identity service.
	CreateUser(ctx context.Context, user models.DemoUser) (string, error)
}
