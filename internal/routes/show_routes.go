package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/repository"
)

func RegisterShowRoutes(router chi.Router, db *sql.DB) {
	showRepo := repository.NewShowRepository(db)
	showHandler := handlers.NewShowHandler(showRepo)

	router.Route("/shows", func(r chi.Router) {
		r.Route("/upcoming", func(r chi.Router) {
			r.Get("/", showHandler.ListUpcomingShows)
			r.Post("/", showHandler.CreateUpcomingShow)

			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", showHandler.UpdateUpcomingShow)
				r.Delete("/", showHandler.DeleteUpcomingShow)
			})
		})

		r.Route("/past", func(r chi.Router) {
			r.Get("/", showHandler.ListPastShows)
			r.Post("/", showHandler.CreatePastShow)

			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", showHandler.UpdatePastShow)
				r.Delete("/", showHandler.DeletePastShow)
			})
		})
	})
}
