package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTracing)
	router.Use(h.withAccessLog)

	// every data route requires an authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/folders", h.createFolder)
		r.Get("/api/folders", h.listFolders)
		r.Get("/api/folders/{folderID}", h.getFolder)
		r.Patch("/api/folders/{folderID}", h.renameFolder)
		r.Delete("/api/folders/{folderID}", h.deleteFolder)

		r.Post("/api/prompts", h.createPrompt)
		r.Get("/api/prompts", h.listPrompts)
		r.Patch("/api/prompts/{promptID}", h.updatePrompt)
		r.Patch("/api/prompts/{promptID}/folder", h.movePrompt)
		r.Delete("/api/prompts/{promptID}", h.deletePrompt)
	})

	return router
}
