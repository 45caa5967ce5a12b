package routes

import (
	"github.com/go-chi/chi/v5"

	"clubnights/internal/favorites"
	"clubnights/internal/handlers"
	"clubnights/internal/query"
)

func RegisterRecommendationRoutes(r chi.Router, svc *query.Service, store favorites.Store) {
	handler := handlers.NewRecommendationsHandler(svc, store)

	r.Get("/recommendations", handler.Get)
}
