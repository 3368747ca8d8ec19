package routes

import (
	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/config"
	"phlegm-site/internal/handlers"
)

func RegisterAuthRoutes(router chi.Router, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(cfg)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})
}
