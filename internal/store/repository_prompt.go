package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/models"
)

// promptRepository is the PostgreSQL-backed implementation of
// [PromptRepository]. It executes all prompt CRUD operations against the
// "prompts" table using the embedded [*DB] connection.
//
// The folder reference carried by a prompt is validated at write time:
// inserts and moves that name a folder verify — inside the same transaction —
// that the folder exists and is owned by the caller. The schema's foreign key
// backs this up at the storage level, but the FK alone cannot check
// ownership, so the owner-scoped lookup here is what keeps users from filing
// prompts into each other's folders.
type promptRepository struct {
	*DB
	logger *logger.Logger
}

// NewPromptRepository constructs a [PromptRepository] backed by the provided
// database connection and logger.
func NewPromptRepository(db *DB, logger *logger.Logger) PromptRepository {
	logger.Debug().Msg("creating prompt repository")
	return &promptRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePrompt persists a new prompt and returns the fully populated
// [models.Prompt] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// When prompt.FolderID is non-nil the target folder's existence and ownership
// are verified in the same transaction as the insert; a missing or foreign
// folder yields [ErrInvalidFolderReference] and nothing is inserted.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrInvalidFolderReference].
//   - not_null_violation (23502) → [ErrConstraintViolation].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (p *promptRepository) CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	if prompt.FolderID == nil {
		return p.insertPrompt(ctx, p.DB, prompt)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.CreatePrompt").
			Str("owner_id", prompt.OwnerID).
			Msg("failed to begin transaction")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = p.checkFolderReference(ctx, tx, prompt.OwnerID, *prompt.FolderID); err != nil {
		return models.Prompt{}, err
	}

	created, err := p.insertPrompt(ctx, tx, prompt)
	if err != nil {
		return models.Prompt{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "promptRepository.CreatePrompt").
			Str("owner_id", prompt.OwnerID).
			Msg("failed to commit transaction")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return created, nil
}

// rowQuerier and execer abstract *sql.DB and *sql.Tx so inserts, moves and
// reference checks can run either standalone or inside a transaction.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertPrompt executes the INSERT … RETURNING statement on q, which is
// either the pooled connection or an open transaction.
func (p *promptRepository) insertPrompt(ctx context.Context, q rowQuerier, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	row := q.QueryRowContext(ctx, createPrompt,
		prompt.OwnerID,
		prompt.FolderID,
		prompt.Name,
		prompt.Description,
		prompt.Content,
	)

	err := row.Scan(
		&prompt.ID,
		&prompt.OwnerID,
		&prompt.FolderID,
		&prompt.Name,
		&prompt.Description,
		&prompt.Content,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.insertPrompt").
			Str("owner_id", prompt.OwnerID).
			Msg("failed to insert prompt")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Prompt{}, ErrInvalidFolderReference
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.Prompt{}, ErrConstraintViolation
		default:
			return models.Prompt{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return prompt, nil
}

// checkFolderReference verifies that folderID resolves to a folder owned by
// ownerID. Returns [ErrInvalidFolderReference] otherwise.
func (p *promptRepository) checkFolderReference(ctx context.Context, q rowQuerier, ownerID string, folderID int64) error {
	log := logger.FromContext(ctx)

	var exists bool
	if err := q.QueryRowContext(ctx, folderExists, folderID, ownerID).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "promptRepository.checkFolderReference").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("failed to check folder existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !exists {
		log.Warn().
			Str("func", "promptRepository.checkFolderReference").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("folder reference does not resolve to an owned folder")
		return ErrInvalidFolderReference
	}

	return nil
}

// GetPrompts retrieves every prompt owned by ownerID ordered by creation
// time, id as tiebreak.
func (p *promptRepository) GetPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPromptsQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.GetPrompts").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return nil, err
	}

	return p.queryPrompts(ctx, query, args)
}

// GetPromptsByFolder retrieves prompts owned by ownerID filed under folderID.
// A nil folderID selects unfiled prompts (folder_id IS NULL).
func (p *promptRepository) GetPromptsByFolder(ctx context.Context, ownerID string, folderID *int64) ([]models.Prompt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPromptsByFolderQuery(ownerID, folderID)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.GetPromptsByFolder").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return nil, err
	}

	return p.queryPrompts(ctx, query, args)
}

// queryPrompts executes a prompt SELECT and scans the full result set.
func (p *promptRepository) queryPrompts(ctx context.Context, query string, args []any) ([]models.Prompt, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.queryPrompts").
			Msg("failed to execute query for getting prompts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	prompts := make([]models.Prompt, 0, 20)

	for rows.Next() {
		var prompt models.Prompt

		scanErr := rows.Scan(
			&prompt.ID,
			&prompt.OwnerID,
			&prompt.FolderID,
			&prompt.Name,
			&prompt.Description,
			&prompt.Content,
			&prompt.CreatedAt,
			&prompt.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "promptRepository.queryPrompts").
				Msg("failed to scan prompt row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		prompts = append(prompts, prompt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "promptRepository.queryPrompts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return prompts, nil
}

// UpdatePrompt applies a partial edit to a prompt. Only the non-nil fields of
// update are written; updated_at is refreshed in the same statement. An
// update carrying no editable fields is a no-op.
//
// Returns [ErrPromptNotFound] when no matching owned prompt exists.
func (p *promptRepository) UpdatePrompt(ctx context.Context, update models.PromptUpdate) error {
	log := logger.FromContext(ctx)

	query, args, hasChanges, err := buildUpdatePromptQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.UpdatePrompt").
			Int64("prompt_id", update.ID).
			Msg("failed to build update query")
		return err
	}

	if !hasChanges {
		log.Warn().
			Str("func", "promptRepository.UpdatePrompt").
			Int64("prompt_id", update.ID).
			Msg("no fields to update, skipping")
		return nil
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.UpdatePrompt").
			Int64("prompt_id", update.ID).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "promptRepository.UpdatePrompt").
			Int64("prompt_id", update.ID).
			Msg("prompt not found")
		return ErrPromptNotFound
	}

	return nil
}

// MovePromptToFolder re-parents a prompt. A nil folderID unfiles it; a
// non-nil folderID is verified against the caller's folders inside the same
// transaction as the move.
//
// Returns [ErrInvalidFolderReference] when the target folder is missing or
// foreign, [ErrPromptNotFound] when the prompt itself is.
func (p *promptRepository) MovePromptToFolder(ctx context.Context, ownerID string, promptID int64, folderID *int64) error {
	log := logger.FromContext(ctx)

	if folderID == nil {
		return p.movePrompt(ctx, p.DB, ownerID, promptID, nil)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.MovePromptToFolder").
			Int64("prompt_id", promptID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = p.checkFolderReference(ctx, tx, ownerID, *folderID); err != nil {
		return err
	}

	if err = p.movePrompt(ctx, tx, ownerID, promptID, folderID); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "promptRepository.MovePromptToFolder").
			Int64("prompt_id", promptID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return nil
}

// movePrompt executes the folder_id UPDATE on q, which is either the pooled
// connection or an open transaction.
func (p *promptRepository) movePrompt(ctx context.Context, q execer, ownerID string, promptID int64, folderID *int64) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, movePrompt, folderID, promptID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.movePrompt").
			Str("owner_id", ownerID).
			Int64("prompt_id", promptID).
			Msg("failed to execute move query")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrInvalidFolderReference
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "promptRepository.movePrompt").
			Str("owner_id", ownerID).
			Int64("prompt_id", promptID).
			Msg("prompt not found")
		return ErrPromptNotFound
	}

	return nil
}

// DeletePrompt removes a prompt permanently.
//
// Returns [ErrPromptNotFound] when no matching owned prompt exists.
func (p *promptRepository) DeletePrompt(ctx context.Context, ownerID string, promptID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePrompt, promptID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.DeletePrompt").
			Str("owner_id", ownerID).
			Int64("prompt_id", promptID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "promptRepository.DeletePrompt").
			Str("owner_id", ownerID).
			Int64("prompt_id", promptID).
			Msg("prompt not found")
		return ErrPromptNotFound
	}

	return nil
}

// DeleteAllPrompts clears the whole prompts table. The seed job calls this
// before reinserting demo data; the live request path never does.
func (p *promptRepository) DeleteAllPrompts(ctx context.Context) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteAllPrompts)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.DeleteAllPrompts").
			Msg("failed to clear prompts table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	log.Info().
		Str("func", "promptRepository.DeleteAllPrompts").
		Int64("rows_deleted", rowsAffected).
		Msg("cleared prompts table")

	return nil
}

// SavePrompts bulk-inserts prompts.
//
// Routing strategy:
//   - Exactly one prompt → plain INSERT, no transaction.
//   - Two or more → one transaction with a prepared statement.
//
// On success each [models.Prompt.ID] is populated with the server-assigned
// primary key returned by the INSERT … RETURNING clause.
func (p *promptRepository) SavePrompts(ctx context.Context, prompts ...*models.Prompt) error {
	if len(prompts) == 0 {
		return nil
	}

	if len(prompts) == 1 {
		saved, err := p.insertPrompt(ctx, p.DB, *prompts[0])
		if err != nil {
			return err
		}
		*prompts[0] = saved
		return nil
	}

	return p.saveMultiplePrompts(ctx, prompts)
}

// saveMultiplePrompts inserts two or more prompts inside a single database
// transaction using a prepared statement. The transaction is rolled back
// automatically (via defer) if any individual insert fails; the commit is
// attempted only after all prompts succeed.
func (p *promptRepository) saveMultiplePrompts(ctx context.Context, prompts []*models.Prompt) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.saveMultiplePrompts").
			Int("count", len(prompts)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, createPrompt)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.saveMultiplePrompts").
			Int("count", len(prompts)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, prompt := range prompts {
		log.Debug().
			Str("func", "promptRepository.saveMultiplePrompts").
			Int("iteration", idx+1).
			Int("total", len(prompts)).
			Str("owner_id", prompt.OwnerID).
			Msg("saving prompt in transaction")

		queryErr := stmt.QueryRowContext(ctx,
			prompt.OwnerID,
			prompt.FolderID,
			prompt.Name,
			prompt.Description,
			prompt.Content,
		).Scan(
			&prompt.ID,
			&prompt.OwnerID,
			&prompt.FolderID,
			&prompt.Name,
			&prompt.Description,
			&prompt.Content,
			&prompt.CreatedAt,
			&prompt.UpdatedAt,
		)
		if queryErr != nil {
			log.Err(queryErr).
				Str("func", "promptRepository.saveMultiplePrompts").
				Int("iteration", idx+1).
				Str("owner_id", prompt.OwnerID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, queryErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "promptRepository.saveMultiplePrompts").
			Int("count", len(prompts)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return nil
}
