package service

import (
	"context"

	"github.com/promptkeep/promptkeep/models"
)

// FolderService exposes folder operations for the authenticated caller. The
// caller's identity is resolved from ctx before any storage access; an
// unauthenticated context fails with identity.ErrUnauthenticated and never
// reaches the repository.
type FolderService interface {
	CreateFolder(ctx context.Context, name string) (models.Folder, error)
	GetFolders(ctx context.Context) ([]models.Folder, error)
	GetFolder(ctx context.Context, folderID int64) (models.Folder, error)
	RenameFolder(ctx context.Context, folderID int64, name string) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID int64) error
}

// PromptService exposes prompt operations for the authenticated caller.
type PromptService interface {
	CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	GetPrompts(ctx context.Context) ([]models.Prompt, error)
	// GetPromptsByFolder lists prompts filed under folderID; nil selects
	// prompts not filed in any folder.
	GetPromptsByFolder(ctx context.Context, folderID *int64) ([]models.Prompt, error)
	UpdatePrompt(ctx context.Context, update models.PromptUpdate) error
	MovePromptToFolder(ctx context.Context, promptID int64, folderID *int64) error
	DeletePrompt(ctx context.Context, promptID int64) error
}
