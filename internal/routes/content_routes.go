package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/content"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/repository"
)

// RegisterPublicContentRoutes mounts the unauthenticated read path. Every
// endpoint here answers 200 with merged content even when the database is
// unreachable.
func RegisterPublicContentRoutes(router chi.Router, db *sql.DB) {
	resolver := content.NewResolver(
		repository.NewContentRepository(db),
		repository.NewShowRepository(db),
		repository.NewSocialLinkRepository(db),
		repository.NewTaglineRepository(db),
	)
	h := handlers.NewPublicContentHandler(resolver)

	router.Route("/content", func(r chi.Router) {
		r.Get("/hero", h.GetHero)
		r.Get("/banner", h.GetBanner)
		r.Get("/bio", h.GetBio)
		r.Get("/about", h.GetAbout)
		r.Get("/legal", h.GetLegal)
		r.Get("/contact", h.GetContact)
	})

	router.Route("/shows", func(r chi.Router) {
		r.Get("/upcoming", h.GetUpcomingShows)
		r.Get("/past", h.GetPastShows)
	})

	router.Get("/taglines", h.GetTaglines)
}
