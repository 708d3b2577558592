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

type promptService struct {
	promptRepository store.PromptRepository
	resolver         identity.Resolver

	logger *logger.Logger
}

// NewPromptService constructs the prompt business service.
func NewPromptService(promptRepository store.PromptRepository, resolver identity.Resolver, logger *logger.Logger) PromptService {
	return &promptService{
		promptRepository: promptRepository,
		resolver:         resolver,
		logger:           logger,
	}
}

func (p *promptService) CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return models.Prompt{}, err
	}

	prompt.Name = strings.TrimSpace(prompt.Name)
	if prompt.Name == "" {
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPromptName)
	}
	if prompt.Content == "" {
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPromptContent)
	}

	// ownership is stamped here; whatever the transport decoded is ignored
	prompt.OwnerID = ownerID

	return p.promptRepository.CreatePrompt(ctx, prompt)
}

func (p *promptService) GetPrompts(ctx context.Context) ([]models.Prompt, error) {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return p.promptRepository.GetPrompts(ctx, ownerID)
}

func (p *promptService) GetPromptsByFolder(ctx context.Context, folderID *int64) ([]models.Prompt, error) {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return p.promptRepository.GetPromptsByFolder(ctx, ownerID, folderID)
}

func (p *promptService) UpdatePrompt(ctx context.Context, update models.PromptUpdate) error {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}
	update.OwnerID = ownerID

	if update.Name == nil && update.Description == nil && update.Content == nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoChanges)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPromptName)
	}
	if update.Content != nil && *update.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoPromptContent)
	}

	return p.promptRepository.UpdatePrompt(ctx, update)
}

func (p *promptService) MovePromptToFolder(ctx context.Context, promptID int64, folderID *int64) error {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}

	return p.promptRepository.MovePromptToFolder(ctx, ownerID, promptID, folderID)
}

func (p *promptService) DeletePrompt(ctx context.Context, promptID int64) error {
	ownerID, err := p.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}

	return p.promptRepository.DeletePrompt(ctx, ownerID, promptID)
}
