package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promptkeep/promptkeep/internal/store"
	"github.com/promptkeep/promptkeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(n int64) *int64 { return &n }

func TestCreatePrompt_Success(t *testing.T) {
	svc := &mockPromptSvc{
		createFn: func(_ context.Context, prompt models.Prompt) (models.Prompt, error) {
			prompt.ID = 1
			prompt.OwnerID = "user_42"
			return prompt, nil
		},
	}
	h := newTestHandler(&mockFolderSvc{}, svc)

	body := models.Prompt{Name: "Code Explainer", Content: "Explain this code"}
	req := httptest.NewRequest(http.MethodPost, "/api/prompts", encodeBody(t, body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.createPrompt(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Prompt
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "user_42", got.OwnerID)
}

func TestCreatePrompt_InvalidFolderReference(t *testing.T) {
	svc := &mockPromptSvc{
		createFn: func(_ context.Context, _ models.Prompt) (models.Prompt, error) {
			return models.Prompt{}, store.ErrInvalidFolderReference
		},
	}
	h := newTestHandler(&mockFolderSvc{}, svc)

	body := models.Prompt{Name: "n", Content: "c", FolderID: int64ptr(404)}
	req := httptest.NewRequest(http.MethodPost, "/api/prompts", encodeBody(t, body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.createPrompt(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestListPrompts_FolderFilter(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantAll      bool
		wantFolderID *int64
	}{
		{name: "no filter lists everything", target: "/api/prompts", wantAll: true},
		{name: "folder=none lists unfiled", target: "/api/prompts?folder=none", wantFolderID: nil},
		{name: "folder id filter", target: "/api/prompts?folder=5", wantFolderID: int64ptr(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listCalled := false
			listByFolderCalled := false

			svc := &mockPromptSvc{
				listFn: func(_ context.Context) ([]models.Prompt, error) {
					listCalled = true
					return nil, nil
				},
				listByFolderFn: func(_ context.Context, folderID *int64) ([]models.Prompt, error) {
					listByFolderCalled = true
					if tt.wantFolderID == nil {
						assert.Nil(t, folderID)
					} else {
						require.NotNil(t, folderID)
						assert.Equal(t, *tt.wantFolderID, *folderID)
					}
					return nil, nil
				},
			}
			h := newTestHandler(&mockFolderSvc{}, svc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = injectNopLogger(req)
			rr := httptest.NewRecorder()

			h.listPrompts(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantAll, listCalled)
			assert.Equal(t, !tt.wantAll, listByFolderCalled)
		})
	}
}

func TestListPrompts_InvalidFolderFilter(t *testing.T) {
	h := newTestHandler(&mockFolderSvc{}, &mockPromptSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/prompts?folder=abc", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.listPrompts(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePrompt_Success(t *testing.T) {
	svc := &mockPromptSvc{
		updateFn: func(_ context.Context, update models.PromptUpdate) error {
			assert.Equal(t, int64(3), update.ID)
			require.NotNil(t, update.Name)
			assert.Equal(t, "Renamed", *update.Name)
			assert.Nil(t, update.Content)
			return nil
		},
	}
	h := newTestHandler(&mockFolderSvc{}, svc)
	router := chiRouterFor(http.MethodPatch, "/api/prompts/{promptID}", h.updatePrompt)

	req := httptest.NewRequest(http.MethodPatch, "/api/prompts/3", strings.NewReader(`{"name":"Renamed"}`))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestUpdatePrompt_NotFound(t *testing.T) {
	svc := &mockPromptSvc{
		updateFn: func(_ context.Context, _ models.PromptUpdate) error {
			return store.ErrPromptNotFound
		},
	}
	h := newTestHandler(&mockFolderSvc{}, svc)
	router := chiRouterFor(http.MethodPatch, "/api/prompts/{promptID}", h.updatePrompt)

	req := httptest.NewRequest(http.MethodPatch, "/api/prompts/404", strings.NewReader(`{"name":"Renamed"}`))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMovePrompt(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantFolderID *int64
	}{
		{name: "move to folder", body: `{"folder_id":5}`, wantFolderID: int64ptr(5)},
		{name: "unfile with null", body: `{"folder_id":null}`, wantFolderID: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockPromptSvc{
				moveFn: func(_ context.Context, promptID int64, folderID *int64) error {
					assert.Equal(t, int64(3), promptID)
					if tt.wantFolderID == nil {
						assert.Nil(t, folderID)
					} else {
						require.NotNil(t, folderID)
						assert.Equal(t, *tt.wantFolderID, *folderID)
					}
					return nil
				},
			}
			h := newTestHandler(&mockFolderSvc{}, svc)
			router := chiRouterFor(http.MethodPatch, "/api/prompts/{promptID}/folder", h.movePrompt)

			req := httptest.NewRequest(http.MethodPatch, "/api/prompts/3/folder", strings.NewReader(tt.body))
			req = injectNopLogger(req)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

func TestDeletePrompt_NotFound(t *testing.T) {
	svc := &mockPromptSvc{
		deleteFn: func(_ context.Context, _ int64) error {
			return store.ErrPromptNotFound
		},
	}
	h := newTestHandler(&mockFolderSvc{}, svc)
	router := chiRouterFor(http.MethodDelete, "/api/prompts/{promptID}", h.deletePrompt)

	req := httptest.NewRequest(http.MethodDelete, "/api/prompts/404", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
