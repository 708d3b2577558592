package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/promptkeep/promptkeep/models"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var promptColumns = []string{
	"id",
	"owner_id",
	"folder_id",
	"name",
	"description",
	"content",
	"created_at",
	"updated_at",
}

var folderColumns = []string{
	"id",
	"owner_id",
	"name",
	"created_at",
	"updated_at",
}

// buildSelectFoldersQuery selects every folder owned by ownerID, ordered
// deterministically by creation time with id as tiebreak.
func buildSelectFoldersQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectPromptsQuery selects every prompt owned by ownerID.
func buildSelectPromptsQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select(promptColumns...).
		From("prompts").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectPromptsByFolderQuery selects prompts owned by ownerID filtered
// by folder. A nil folderID selects unfiled prompts (folder_id IS NULL).
func buildSelectPromptsByFolderQuery(ownerID string, folderID *int64) (string, []any, error) {
	builder := psql.
		Select(promptColumns...).
		From("prompts").
		Where(sq.Eq{"owner_id": ownerID})

	if folderID == nil {
		// sq.Eq renders a nil value as IS NULL
		builder = builder.Where(sq.Eq{"folder_id": nil})
	} else {
		builder = builder.Where(sq.Eq{"folder_id": *folderID})
	}

	query, args, err := builder.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePromptQuery builds a partial UPDATE for the non-nil fields of
// update. updated_at is always rewritten so that every successful mutation
// refreshes the row's timestamp.
//
// The returned hasChanges flag is false when update carries no editable
// fields; callers should treat that case as a no-op.
func buildUpdatePromptQuery(update models.PromptUpdate) (query string, args []any, hasChanges bool, err error) {
	builder := psql.
		Update("prompts").
		Set("updated_at", sq.Expr("now()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		hasChanges = true
	}

	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		hasChanges = true
	}

	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		hasChanges = true
	}

	if !hasChanges {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"id": update.ID, "owner_id": update.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, true, nil
}
