package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/repository"
)

func RegisterTaglineRoutes(router chi.Router, db *sql.DB) {
	taglineRepo := repository.NewTaglineRepository(db)
	taglineHandler := handlers.NewTaglineHandler(taglineRepo)

	router.Route("/taglines", func(r chi.Router) {
		r.Get("/", taglineHandler.ListTaglines)
		r.Post("/", taglineHandler.CreateTagline)

		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", taglineHandler.UpdateTagline)
			r.Delete("/", taglineHandler.DeleteTagline)
		})
	})
}
