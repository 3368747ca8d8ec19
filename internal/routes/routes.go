package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"phlegm-site/internal/config"
	appmw "phlegm-site/internal/middleware"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, storageCfg *config.StorageConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "phlegm-site API",
		})
	})

	r.Get("/health", healthHandler(db))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, cfg)
		RegisterPublicContentRoutes(r, db)

		r.Route("/admin", func(r chi.Router) {
			r.Use(appmw.JWTAuth(cfg.JWTSecret))

			RegisterAdminContentRoutes(r, db)
			RegisterShowRoutes(r, db)
			RegisterSocialLinkRoutes(r, db)
			RegisterTaglineRoutes(r, db)
			RegisterMediaRoutes(r, storageCfg)
			RegisterStatsRoutes(r, cfg)
		})
	})

	RegisterSwaggerRoutes(r)

	return r
}

type healthStatus struct {
	Status string `json:"status"`
	DB     struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"db"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp healthStatus
		resp.Status = "ok"
		resp.DB.Status = "ok"

		code := http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.DB.Status = "down"
			resp.DB.Error = err.Error()
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(resp)
	}
}
