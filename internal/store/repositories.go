package store

import (
	"github.com/promptkeep/promptkeep/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection.
type Repositories struct {
	FolderRepository FolderRepository
	PromptRepository PromptRepository
}

// NewRepositories wires all repositories to the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		FolderRepository: NewFolderRepository(db, logger),
		PromptRepository: NewPromptRepository(db, logger),
	}
}
