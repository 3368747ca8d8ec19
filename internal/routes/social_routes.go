package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/repository"
)

func RegisterSocialLinkRoutes(router chi.Router, db *sql.DB) {
	socialRepo := repository.NewSocialLinkRepository(db)
	socialHandler := handlers.NewSocialLinkHandler(socialRepo)

	router.Route("/social-links", func(r chi.Router) {
		r.Get("/", socialHandler.ListSocialLinks)
		r.Post("/", socialHandler.CreateSocialLink)

		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", socialHandler.UpdateSocialLink)
			r.Delete("/", socialHandler.DeleteSocialLink)
			r.Post("/primary", socialHandler.SetPrimarySocialLink)
		})
	})
}
