package main

import (
	"context"
	"fmt"

	"github.com/promptkeep/promptkeep/internal/adapter"
	"github.com/promptkeep/promptkeep/internal/config"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/internal/seed"
	"github.com/promptkeep/promptkeep/internal/store"
)

func main() {
	log := logger.NewLogger("promptkeep-seed")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding database")
	}
}

// run wires and executes the seed job. Failures are returned to main, which
// exits non-zero; calling log.Fatal here would skip the deferred Close.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	if err := cfg.ValidateSeed(); err != nil {
		return fmt.Errorf("invalid seed configs: %w", err)
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	repositories := store.NewRepositories(db, log)
	directory := adapter.NewUserDirectory(cfg.Seed, log)
	runner := seed.NewRunner(directory, repositories.PromptRepository, cfg.Seed.BlockSize, log)

	return runner.Run(ctx)
}
