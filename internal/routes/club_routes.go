package routes

import (
	"github.com/go-chi/chi/v5"

	"clubnights/internal/handlers"
	"clubnights/internal/query"
)

func RegisterClubRoutes(r chi.Router, svc *query.Service) {
	handler := handlers.NewClubsHandler(svc)

	r.Get("/clubs", handler.List)
	r.Get("/clubs/{clubID}", handler.Get)
}
