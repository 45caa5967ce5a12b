// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL is the backing store connection string. Its absence is a
	// fatal startup error; there is no degraded mode without the store.
	DatabaseURL string `validate:"required"`

	// DisplayTimeZone is the zone day buckets are computed in.
	DisplayTimeZone string `validate:"required"`

	// FavoritesDir is where per-profile liked-clubs state is persisted.
	FavoritesDir string `validate:"required"`

	// RecommendationWindowDays bounds the "events from liked clubs" view.
	RecommendationWindowDays int `validate:"gt=0,lte=60"`

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" && os.Getenv("PSQL_HOST") != "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := os.Getenv("PSQL_PASSWORD")
		dbName := getEnv("PSQL_DB_NAME", "clubnights")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", getEnv("PSQL_SSLMODE", "disable"))
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	windowDays := 14
	if v := os.Getenv("RECOMMENDATION_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RECOMMENDATION_WINDOW_DAYS %q: %w", v, err)
		}
		windowDays = n
	}

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		DatabaseURL:              databaseURL,
		DisplayTimeZone:          getEnv("DISPLAY_TIMEZONE", "Europe/Berlin"),
		FavoritesDir:             getEnv("FAVORITES_DIR", "data/favorites"),
		RecommendationWindowDays: windowDays,
		CORSAllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Location resolves the configured display timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimeZone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
