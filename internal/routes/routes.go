// internal/routes/routes.go
package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"clubnights/internal/config"
	"clubnights/internal/favorites"
	"clubnights/internal/handlers"
	appmw "clubnights/internal/middleware"
	"clubnights/internal/query"
	"clubnights/internal/repository"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, loc *time.Location, store favorites.Store) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(appmw.Profile)

	svc := query.NewService(
		repository.NewEventRepository(db),
		repository.NewClubRepository(db),
		loc,
	)
	svc.WindowDays = cfg.RecommendationWindowDays

	r.Get("/", handlers.Root)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{"status": "ok", "db": map[string]string{"status": "ok"}}
		if err := db.PingContext(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body = map[string]any{"status": "degraded", "db": map[string]string{"status": "down", "error": err.Error()}}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterEventRoutes(r, svc)
		RegisterClubRoutes(r, svc)
		RegisterFavoriteRoutes(r, store)
		RegisterRecommendationRoutes(r, svc, store)
	})

	RegisterSwaggerRoutes(r)

	return r
}
