package routes

import (
	"github.com/go-chi/chi/v5"

	"clubnights/internal/favorites"
	"clubnights/internal/handlers"
)

func RegisterFavoriteRoutes(r chi.Router, store favorites.Store) {
	handler := handlers.NewFavoritesHandler(store)

	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{clubID}", handler.Get)
		r.Post("/{clubID}", handler.Toggle)
	})
}
