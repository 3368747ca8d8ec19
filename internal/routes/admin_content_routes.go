package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/repository"
)

// RegisterAdminContentRoutes mounts the singleton editors. Reads return the
// raw row so the admin sees what is stored, not the merged public view.
func RegisterAdminContentRoutes(router chi.Router, db *sql.DB) {
	contentRepo := repository.NewContentRepository(db)
	h := handlers.NewAdminContentHandler(contentRepo)

	router.Route("/content", func(r chi.Router) {
		r.Get("/hero", h.GetHero)
		r.Put("/hero", h.UpdateHero)
		r.Get("/banner", h.GetBanner)
		r.Put("/banner", h.UpdateBanner)
		r.Get("/bio", h.GetBio)
		r.Put("/bio", h.UpdateBio)
		r.Get("/about", h.GetAbout)
		r.Put("/about", h.UpdateAbout)
		r.Get("/legal", h.GetLegal)
		r.Put("/legal", h.UpdateLegal)
	})

	router.Route("/booking", func(r chi.Router) {
		r.Get("/", h.GetBooking)
		r.Put("/", h.UpdateBooking)
	})
}
