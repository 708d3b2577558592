package http

import (
	"errors"
	"net/http"

	"github.com/promptkeep/promptkeep/internal/identity"
	"github.com/promptkeep/promptkeep/internal/service"
	"github.com/promptkeep/promptkeep/internal/store"
)

var errorStatusMap = map[error]int{
	identity.ErrUnauthenticated: http.StatusUnauthorized,
	identity.ErrTokenIsExpired:  http.StatusUnauthorized,
	identity.ErrInvalidToken:    http.StatusUnauthorized,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrFolderNotFound:         http.StatusNotFound,
	store.ErrPromptNotFound:         http.StatusNotFound,
	store.ErrInvalidFolderReference: http.StatusUnprocessableEntity,
	store.ErrConstraintViolation:    http.StatusConflict,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:    http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
