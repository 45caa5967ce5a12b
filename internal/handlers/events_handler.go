package handlers

import (
	"net/http"
	"time"

	"clubnights/internal/query"
	"clubnights/internal/tabs"
)

// EventsHandler serves the date-bucketed event listings. Query failures
// degrade to empty results with a 200; the query layer has already logged
// them, and the UI contract is "empty list", never an error page.
type EventsHandler struct {
	svc *query.Service
}

func NewEventsHandler(svc *query.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// ListDates returns the upcoming calendar dates that have events.
// @Summary List upcoming event dates
// @Tags events
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/events/dates [get]
func (h *EventsHandler) ListDates(w http.ResponseWriter, r *http.Request) {
	res := h.svc.UpcomingEventDates(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"dates": res.Dates})
}

// ListByDate returns the events on one calendar day.
// @Summary List events on a date
// @Tags events
// @Produce json
// @Param date query string true "calendar date (yyyy-MM-dd)"
// @Success 200 {object} map[string]any
// @Router /api/v1/events [get]
func (h *EventsHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")
	if day == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "date query parameter is required")
		return
	}
	if _, err := time.Parse(query.DayFormat, day); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "date must be formatted yyyy-MM-dd")
		return
	}

	res := h.svc.EventsOnDate(r.Context(), day)
	writeJSON(w, http.StatusOK, map[string]any{"date": day, "events": res.Events})
}

// DayView composes the tabbed day view: upcoming dates, the selected date,
// and that day's events. The date query parameter is the deep-link
// preference; the canonical selection is echoed back in selected_date, which
// clients write back into the URL on every change.
// @Summary Day view with date tabs
// @Tags events
// @Produce json
// @Param date query string false "preferred calendar date (yyyy-MM-dd)"
// @Success 200 {object} map[string]any
// @Router /api/v1/events/day-view [get]
func (h *EventsHandler) DayView(w http.ResponseWriter, r *http.Request) {
	preferred := r.URL.Query().Get("date")
	if preferred != "" {
		if _, err := time.Parse(query.DayFormat, preferred); err != nil {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "date must be formatted yyyy-MM-dd")
			return
		}
	}

	controller := tabs.NewController(h.svc)
	controller.Init(r.Context(), preferred)
	snap := controller.Snapshot()

	state := "ok"
	if snap.State == tabs.NoUpcomingEvents {
		state = "no_events"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state":         state,
		"dates":         snap.Dates,
		"selected_date": snap.Selected,
		"events":        snap.Events,
	})
}
