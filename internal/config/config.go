// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	// Admin auth. AdminPasswordHash (bcrypt) wins over AdminPassword when both are set.
	AdminPassword       string
	AdminPasswordHash   string
	JWTSecret           string
	JWTExpiresInSeconds int

	// Analytics proxy.
	AnalyticsAPIKey  string
	AnalyticsSiteID  string
	AnalyticsBaseURL string

	// Origin allowed to call the API from a browser.
	AllowedOrigin string
}

func Load() *Config {
	// Missing .env is fine; deployments set env directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "phlegm_site")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: databaseURL,

		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:           getEnv("JWT_SECRET", "dev"),
		JWTExpiresInSeconds: getEnvInt("JWT_EXPIRES_IN_SECONDS", 86400),

		AnalyticsAPIKey:  os.Getenv("PLAUSIBLE_API_KEY"),
		AnalyticsSiteID:  getEnv("PLAUSIBLE_SITE_ID", "phlegm.music"),
		AnalyticsBaseURL: getEnv("PLAUSIBLE_API_URL", "https://plausible.io/api/v1/stats"),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
