package routes

import (
	"github.com/go-chi/chi/v5"

	"clubnights/internal/handlers"
	"clubnights/internal/query"
)

func RegisterEventRoutes(r chi.Router, svc *query.Service) {
	handler := handlers.NewEventsHandler(svc)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", handler.ListByDate)
		r.Get("/dates", handler.ListDates)
		r.Get("/day-view", handler.DayView)
	})
}
