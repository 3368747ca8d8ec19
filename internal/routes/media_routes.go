package routes

import (
	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/config"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/services"
)

// RegisterMediaRoutes mounts the upload and listing endpoints. storageCfg is
// nil when the storage credentials are absent; the handler reports that as a
// configuration error per request instead of refusing to start.
func RegisterMediaRoutes(router chi.Router, storageCfg *config.StorageConfig) {
	var client *services.StorageClient
	if storageCfg != nil {
		client = services.NewStorageClient(storageCfg)
	}
	mediaHandler := handlers.NewMediaHandler(client)

	router.Route("/media", func(r chi.Router) {
		r.Get("/", mediaHandler.ListFiles)
		r.Post("/upload", mediaHandler.Upload)
	})
}
