package seed

import (
	"context"
	"fmt"

	"github.com/promptkeep/promptkeep/internal/adapter"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/internal/store"
	"github.com/promptkeep/promptkeep/models"
)

// Runner executes the seed job end to end. Each run is destructive: every
// existing prompt is removed before the templates are inserted.
type Runner struct {
	directory        adapter.UserDirectory
	promptRepository store.PromptRepository

	users     []models.DemoUser
	templates []models.PromptTemplate
	blockSize int

	logger *logger.Logger
}

// NewRunner wires a Runner over the identity service client and the prompt
// repository. A non-positive blockSize falls back to [DefaultBlockSize].
func NewRunner(directory adapter.UserDirectory, promptRepository store.PromptRepository, blockSize int, logger *logger.Logger) *Runner {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	return &Runner{
		directory:        directory,
		promptRepository: promptRepository,
		users:            DemoUsers,
		templates:        Templates,
		blockSize:        blockSize,
		logger:           logger,
	}
}

// Run performs the seed steps in order: provision demo users, clear the
// prompts table, assign templates to the new users, bulk insert.
//
// The first failed user creation aborts the run. Users already provisioned in
// the identity service are NOT rolled back; rerunning the job will attempt to
// create them again and the identity service will reject the duplicates.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info().Str("func", "*Runner.Run").Msg("starting seeding")

	ownerIDs := make([]string, 0, len(r.users))
	for _, user := range r.users {
		ownerID, err := r.directory.CreateUser(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating demo user: %w", err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}
	r.logger.Info().Strs("owner_ids", ownerIDs).Msg("created demo users")

	if err := r.promptRepository.DeleteAllPrompts(ctx); err != nil {
		return fmt.Errorf("error clearing existing prompts: %w", err)
	}
	r.logger.Info().Msg("cleared existing prompts")

	prompts, err := AssignOwners(r.templates, ownerIDs, r.blockSize)
	if err != nil {
		return fmt.Errorf("error assigning owners: %w", err)
	}

	if err = r.promptRepository.SavePrompts(ctx, prompts...); err != nil {
		return fmt.Errorf("error inserting seed prompts: %w", err)
	}
	r.logger.Info().Int("count", len(prompts)).Msg("inserted seed prompts")

	r.logger.Info().Str("func", "*Runner.Run").Msg("seeding completed successfully")

	return nil
}
