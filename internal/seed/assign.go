package seed

import (
	"errors"
	"fmt"

	"github.com/promptkeep/promptkeep/models"
)

var (
	// ErrInvalidBlockSize is returned when the block size is zero or
	// negative.
	ErrInvalidBlockSize = errors.New("block size must be positive")

	// ErrNotEnoughOwners is returned when the owner list cannot cover every
	// template at the given block size.
	ErrNotEnoughOwners = errors.New("not enough owners for templates")
)

// AssignOwners converts templates into prompts owned by the given users.
// Templates are handed out in consecutive blocks: template i belongs to
// ownerIDs[i/blockSize]. The assignment is deterministic for a fixed input
// order.
func AssignOwners(templates []models.PromptTemplate, ownerIDs []string, blockSize int) ([]*models.Prompt, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}
	if len(ownerIDs)*blockSize < len(templates) {
		return nil, fmt.Errorf("%w: %d owners x block %d < %d templates",
			ErrNotEnoughOwners, len(ownerIDs), blockSize, len(templates))
	}

	prompts := make([]*models.Prompt, 0, len(templates))
	for i, template := range templates {
		prompts = append(prompts, &models.Prompt{
			OwnerID:     ownerIDs[i/blockSize],
			Name:        template.Name,
			Description: template.Description,
			Content:     template.Content,
		})
	}

	return prompts, nil
}
