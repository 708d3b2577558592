package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/models"
)

// folderRepository is the PostgreSQL-backed implementation of
// [FolderRepository]. It executes all folder CRUD against the "folders"
// table and owns the set-null cascade onto "prompts" when a folder is
// deleted.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type folderRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFolderRepository constructs a [FolderRepository] backed by the provided
// database connection and logger.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFolder persists a new folder and returns the fully populated
// [models.Folder] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new row.
//
// Error handling:
//   - PostgreSQL not_null_violation (23502) → [ErrConstraintViolation].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFolder, folder.OwnerID, folder.Name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.Folder{}, ErrConstraintViolation
		default:
			return models.Folder{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&folder.ID, &folder.OwnerID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Msg("error: scanning error")
		return models.Folder{}, err
	}

	return folder, nil
}

// GetFolders retrieves every folder owned by ownerID ordered by creation
// time, id as tiebreak. Returns an empty slice when the user owns no folders.
func (r *folderRepository) GetFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFoldersQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.GetFolders").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.GetFolders").
			Str("owner_id", ownerID).
			Msg("failed to execute query for getting folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 10)

	for rows.Next() {
		var folder models.Folder

		scanErr := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.Name,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "folderRepository.GetFolders").
				Str("owner_id", ownerID).
				Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		folders = append(folders, folder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "folderRepository.GetFolders").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return folders, nil
}

// GetFolder retrieves a single folder by id, scoped to ownerID.
//
// Returns [ErrFolderNotFound] when no matching owned folder exists.
func (r *folderRepository) GetFolder(ctx context.Context, ownerID string, folderID int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var folder models.Folder
	row := r.db.QueryRowContext(ctx, getFolder, folderID, ownerID)

	if err := row.Scan(&folder.ID, &folder.OwnerID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "folderRepository.GetFolder").
				Str("owner_id", ownerID).
				Int64("folder_id", folderID).
				Msg("folder not found")
			return models.Folder{}, ErrFolderNotFound
		}

		log.Err(err).
			Str("func", "folderRepository.GetFolder").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("failed to scan folder row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

// RenameFolder changes the folder's name and refreshes its updated_at
// timestamp in the same statement.
//
// Returns [ErrFolderNotFound] when no matching owned folder exists.
func (r *folderRepository) RenameFolder(ctx context.Context, ownerID string, folderID int64, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, renameFolder, name, folderID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.RenameFolder").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("failed to execute rename query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "folderRepository.RenameFolder").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("folder not found")
		return ErrFolderNotFound
	}

	return nil
}

// DeleteFolder removes the folder and unfiles every prompt that referenced
// it. Both statements run inside one transaction: dependents are set to
// folder_id = NULL (with a refreshed updated_at) first, then the folder row
// is deleted scoped by owner. If the folder does not exist or belongs to
// another user the transaction rolls back, restoring the dependents, and
// [ErrFolderNotFound] is returned.
//
// No observable state ever has the folder gone with prompts still pointing
// at its id, or prompts unfiled while the folder remains.
func (r *folderRepository) DeleteFolder(ctx context.Context, ownerID string, folderID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.DeleteFolder").
			Int64("folder_id", folderID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Unfile dependents first. If the folder turns out to be missing the
	// rollback below undoes this.
	if _, err = tx.ExecContext(ctx, clearFolderReferences, folderID); err != nil {
		log.Err(err).
			Str("func", "folderRepository.DeleteFolder").
			Int64("folder_id", folderID).
			Msg("failed to clear folder references on prompts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteFolder, folderID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.DeleteFolder").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "folderRepository.DeleteFolder").
			Str("owner_id", ownerID).
			Int64("folder_id", folderID).
			Msg("folder not found")
		return ErrFolderNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "folderRepository.DeleteFolder").
			Int64("folder_id", folderID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	log.Info().
		Str("func", "folderRepository.DeleteFolder").
		Str("owner_id", ownerID).
		Int64("folder_id", folderID).
		Msg("successfully deleted folder and unfiled its prompts")

	return nil
}
