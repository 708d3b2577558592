package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/promptkeep/promptkeep/models"
)

// unfiledFolderParam selects prompts not filed in any folder when passed as
// the "folder" query parameter.
const unfiledFolderParam = "none"

type movePromptRequest struct {
	FolderID *int64 `json:"folder_id"`
}

func (h *Handler) createPrompt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var prompt models.Prompt
	if err := json.NewDecoder(r.Body).Decode(&prompt); err != nil {
		log.Err(err).Str("func", "*Handler.createPrompt").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PromptService.CreatePrompt(r.Context(), prompt)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPrompt").Msg("error creating prompt")
		http.Error(w, "error creating prompt", statusFromError(err))
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

// listPrompts serves GET /api/prompts. Without a "folder" query parameter it
// returns every prompt of the caller; "folder=none" returns unfiled prompts;
// "folder=<id>" returns prompts filed under that folder.
func (h *Handler) listPrompts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var (
		prompts []models.Prompt
		err     error
	)

	switch folderParam := r.URL.Query().Get("folder"); folderParam {
	case "":
		prompts, err = h.services.PromptService.GetPrompts(ctx)
	case unfiledFolderParam:
		prompts, err = h.services.PromptService.GetPromptsByFolder(ctx, nil)
	default:
		var folderID int64
		folderID, err = strconv.ParseInt(folderParam, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listPrompts").Msg("invalid folder filter")
			http.Error(w, "invalid folder filter", http.StatusBadRequest)
			return
		}
		prompts, err = h.services.PromptService.GetPromptsByFolder(ctx, &folderID)
	}

	if err != nil {
		log.Err(err).Str("func", "*Handler.listPrompts").Msg("error listing prompts")
		http.Error(w, "error listing prompts", statusFromError(err))
		return
	}

	writeJSON(w, prompts, http.StatusOK)
}

func (h *Handler) updatePrompt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	promptID, err := pathID(r, "promptID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePrompt").Msg("invalid prompt id")
		http.Error(w, "invalid prompt id", http.StatusBadRequest)
		return
	}

	var update models.PromptUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updatePrompt").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = promptID

	if err = h.services.PromptService.UpdatePrompt(r.Context(), update); err != nil {
		log.Err(err).Str("func", "*Handler.updatePrompt").Msg("error updating prompt")
		http.Error(w, "error updating prompt", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) movePrompt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	promptID, err := pathID(r, "promptID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.movePrompt").Msg("invalid prompt id")
		http.Error(w, "invalid prompt id", http.StatusBadRequest)
		return
	}

	var req movePromptRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.movePrompt").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err = h.services.PromptService.MovePromptToFolder(r.Context(), promptID, req.FolderID); err != nil {
		log.Err(err).Str("func", "*Handler.movePrompt").Msg("error moving prompt")
		http.Error(w, "error moving prompt", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePrompt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	promptID, err := pathID(r, "promptID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePrompt").Msg("invalid prompt id")
		http.Error(w, "invalid prompt id", http.StatusBadRequest)
		return
	}

	if err = h.services.PromptService.DeletePrompt(r.Context(), promptID); err != nil {
		log.Err(err).Str("func", "*Handler.deletePrompt").Msg("error deleting prompt")
		http.Error(w, "error deleting prompt", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
