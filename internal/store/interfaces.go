package store

import (
	"context"

	"github.com/promptkeep/promptkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FolderRepository is the owner-scoped data access contract for folders.
// Every method filters by the caller's owner id; a folder belonging to
// another user behaves exactly like a missing one.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	GetFolders(ctx context.Context, ownerID string) ([]models.Folder, error)
	GetFolder(ctx context.Context, ownerID string, folderID int64) (models.Folder, error)
	RenameFolder(ctx context.Context, ownerID string, folderID int64, name string) error
	// DeleteFolder removes the folder and unfiles every prompt that
	// referenced it in a single transaction.
	DeleteFolder(ctx context.Context, ownerID string, folderID int64) error
}

// PromptRepository is the owner-scoped data access contract for prompts.
type PromptRepository interface {
	CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	GetPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error)
	// GetPromptsByFolder lists prompts filed under folderID; a nil folderID
	// selects unfiled prompts.
	GetPromptsByFolder(ctx context.Context, ownerID string, folderID *int64) ([]models.Prompt, error)
	UpdatePrompt(ctx context.Context, update models.PromptUpdate) error
	MovePromptToFolder(ctx context.Context, ownerID string, promptID int64, folderID *int64) error
	DeletePrompt(ctx context.Context, ownerID string, promptID int64) error

	// DeleteAllPrompts clears the whole table. Used by the seed job only.
	DeleteAllPrompts(ctx context.Context) error
	// SavePrompts bulk-inserts prompts in one transaction and writes the
	// server-assigned ids back into the given structs.
	SavePrompts(ctx context.Context, prompts ...*models.Prompt) error
}
