package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/promptkeep/promptkeep/internal/logger"
)

type folderRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	folder, err := h.services.FolderService.CreateFolder(r.Context(), req.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("error creating folder")
		http.Error(w, "error creating folder", statusFromError(err))
		return
	}

	writeJSON(w, folder, http.StatusCreated)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folders, err := h.services.FolderService.GetFolders(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFolders").Msg("error listing folders")
		http.Error(w, "error listing folders", statusFromError(err))
		return
	}

	writeJSON(w, folders, http.StatusOK)
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFolder").Msg("invalid folder id")
		http.Error(w, "invalid folder id", http.StatusBadRequest)
		return
	}

	folder, err := h.services.FolderService.GetFolder(r.Context(), folderID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFolder").Msg("error getting folder")
		http.Error(w, "error getting folder", statusFromError(err))
		return
	}

	writeJSON(w, folder, http.StatusOK)
}

func (h *Handler) renameFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.renameFolder").Msg("invalid folder id")
		http.Error(w, "invalid folder id", http.StatusBadRequest)
		return
	}

	var req folderRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.renameFolder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	folder, err := h.services.FolderService.RenameFolder(r.Context(), folderID, req.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renameFolder").Msg("error renaming folder")
		http.Error(w, "error renaming folder", statusFromError(err))
		return
	}

	writeJSON(w, folder, http.StatusOK)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteFolder").Msg("invalid folder id")
		http.Error(w, "invalid folder id", http.StatusBadRequest)
		return
	}

	if err = h.services.FolderService.DeleteFolder(r.Context(), folderID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFolder").Msg("error deleting folder")
		http.Error(w, "error deleting folder", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive integer id from the named chi URL parameter.
func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}
