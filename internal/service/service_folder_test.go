package service

import (
	"context"
	"errors"
	"testing"

	"github.com/promptkeep/promptkeep/internal/identity"
	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/internal/mock"
	"github.com/promptkeep/promptkeep/internal/store"
	"github.com/promptkeep/promptkeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFolderService(t *testing.T) (*gomock.Controller, *mock.MockFolderRepository, FolderService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockFolderRepository(ctrl)
	svc := NewFolderService(repo, identity.NewContextResolver(), logger.Nop())

	return ctrl, repo, svc
}

func authedCtx(ownerID string) context.Context {
	return identity.WithOwnerID(context.Background(), ownerID)
}

func TestFolderService_CreateFolder(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")
	want := models.Folder{ID: 1, OwnerID: "user_42", Name: "Snippets"}

	repo.EXPECT().
		CreateFolder(ctx, models.Folder{OwnerID: "user_42", Name: "Snippets"}).
		Return(want, nil)

	got, err := svc.CreateFolder(ctx, "  Snippets  ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFolderService_CreateFolder_EmptyName(t *testing.T) {
	ctrl, _, svc := newTestFolderService(t)
	defer ctrl.Finish()

	_, err := svc.CreateFolder(authedCtx("user_42"), "   ")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFolderService_Unauthenticated(t *testing.T) {
	ctrl, _, svc := newTestFolderService(t)
	defer ctrl.Finish()

	// no expectations set: the repository must never be touched
	ctx := context.Background()

	_, err := svc.CreateFolder(ctx, "Snippets")
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)

	_, err = svc.GetFolders(ctx)
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)

	_, err = svc.GetFolder(ctx, 1)
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)

	_, err = svc.RenameFolder(ctx, 1, "Renamed")
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)

	err = svc.DeleteFolder(ctx, 1)
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)
}

func TestFolderService_GetFolders(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")
	want := []models.Folder{
		{ID: 1, OwnerID: "user_42", Name: "Work"},
		{ID: 2, OwnerID: "user_42", Name: "Personal"},
	}

	repo.EXPECT().GetFolders(ctx, "user_42").Return(want, nil)

	got, err := svc.GetFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFolderService_RenameFolder(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")
	want := models.Folder{ID: 7, OwnerID: "user_42", Name: "Renamed"}

	repo.EXPECT().RenameFolder(ctx, "user_42", int64(7), "Renamed").Return(nil)
	repo.EXPECT().GetFolder(ctx, "user_42", int64(7)).Return(want, nil)

	got, err := svc.RenameFolder(ctx, 7, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFolderService_RenameFolder_NotFound(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")

	repo.EXPECT().
		RenameFolder(ctx, "user_42", int64(404), "Renamed").
		Return(store.ErrFolderNotFound)

	_, err := svc.RenameFolder(ctx, 404, "Renamed")
	require.ErrorIs(t, err, store.ErrFolderNotFound)
}

func TestFolderService_DeleteFolder(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")

	repo.EXPECT().DeleteFolder(ctx, "user_42", int64(7)).Return(nil)

	require.NoError(t, svc.DeleteFolder(ctx, 7))
}

func TestFolderService_DeleteFolder_RepositoryError(t *testing.T) {
	ctrl, repo, svc := newTestFolderService(t)
	defer ctrl.Finish()

	ctx := authedCtx("user_42")
	repoErr := errors.New("connection reset")

	repo.EXPECT().DeleteFolder(ctx, "user_42", int64(7)).Return(repoErr)

	err := svc.DeleteFolder(ctx, 7)
	require.ErrorIs(t, err, repoErr)
}
