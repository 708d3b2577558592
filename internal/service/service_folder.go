package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptkeep/promptkeep/internal/identity"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/internal/store"
	"github.com/promptkeep/promptkeep/models"
)

type folderService struct {
	folderRepository store.FolderRepository
	resolver         identity.Resolver

	logger *logger.Logger
}

// NewFolderService constructs the folder business service.
func NewFolderService(folderRepository store.FolderRepository, resolver identity.Resolver, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		resolver:         resolver,
		logger:           logger,
	}
}

func (f *folderService) CreateFolder(ctx context.Context, name string) (models.Folder, error) {
	ownerID, err := f.resolver.CurrentUser(ctx)
	if err != nil {
		return models.Folder{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoFolderName)
	}

	return f.folderRepository.CreateFolder(ctx, models.Folder{OwnerID: ownerID, Name: name})
}

func (f *folderService) GetFolders(ctx context.Context) ([]models.Folder, error) {
	ownerID, err := f.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return f.folderRepository.GetFolders(ctx, ownerID)
}

func (f *folderService) GetFolder(ctx context.Context, folderID int64) (models.Folder, error) {
	ownerID, err := f.resolver.CurrentUser(ctx)
	if err != nil {
		return models.Folder{}, err
	}

	return f.folderRepository.GetFolder(ctx, ownerID, folderID)
}

func (f *folderService) RenameFolder(ctx context.Context, folderID int64, name string) (models.Folder, error) {
	ownerID, err := f.resolver.CurrentUser(ctx)
	if err != nil {
		return models.Folder{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoFolderName)
	}

	if err = f.folderRepository.RenameFolder(ctx, ownerID, folderID, name); err != nil {
		return models.Folder{}, err
	}

	return f.folderRepository.GetFolder(ctx, ownerID, folderID)
}

// DeleteFolder removes the folder; prompts filed under it are kept and
// unfiled by the repository in the same transaction.
func (f *folderService) DeleteFolder(ctx context.Context, folderID int64) error {
	ownerID, err := f.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}

	f.logger.Info().
		Str("func", "DeleteFolder").
		Str("owner_id", ownerID).
		Int64("folder_id", folderID).
		Msg("deleting folder and unfiling its prompts")

	return f.folderRepository.DeleteFolder(ctx, ownerID, folderID)
}
