package routes

import (
	"github.com/go-chi/chi/v5"
	"phlegm-site/internal/config"
	"phlegm-site/internal/handlers"
	"phlegm-site/internal/services"
)

func RegisterStatsRoutes(router chi.Router, cfg *config.Config) {
	analytics := services.NewAnalyticsClient(cfg.AnalyticsBaseURL, cfg.AnalyticsAPIKey, cfg.AnalyticsSiteID)
	statsHandler := handlers.NewStatsHandler(analytics)

	router.Get("/stats", statsHandler.GetStats)
}
