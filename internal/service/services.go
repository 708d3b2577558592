package service

import (
	"github.com/promptkeep/promptkeep/internal/identity"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/internal/store"
)

// Services aggregates every business service exposed to transports.
type Services struct {
	FolderService FolderService
	PromptService PromptService
}

// NewServices wires all services to the given repositories and identity
// resolver.
func NewServices(repositories *store.Repositories, resolver identity.Resolver, logger *logger.Logger) *Services {
	return &Services{
		FolderService: NewFolderService(repositories.FolderRepository, resolver, logger),
		PromptService: NewPromptService(repositories.PromptRepository, resolver, logger),
	}
}
