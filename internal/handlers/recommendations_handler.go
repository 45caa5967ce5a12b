package handlers

import (
	"net/http"
	"strconv"

	"clubnights/internal/favorites"
	"clubnights/internal/middleware"
	"clubnights/internal/models"
	"clubnights/internal/query"
)

// RecommendationsHandler is the "For You" view: events from the profile's
// liked clubs inside the recommendation window, grouped by day, alongside
// the liked clubs and the full club list.
type RecommendationsHandler struct {
	svc   *query.Service
	store favorites.Store
}

func NewRecommendationsHandler(svc *query.Service, store favorites.Store) *RecommendationsHandler {
	return &RecommendationsHandler{svc: svc, store: store}
}

// Get returns the recommendations view for the current profile.
// @Summary Recommended events from liked clubs
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/recommendations [get]
func (h *RecommendationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	likedIDs := h.store.Liked(middleware.ProfileID(r))

	clubIDs := make([]int, 0, len(likedIDs))
	for _, id := range likedIDs {
		n, err := strconv.Atoi(id)
		if err != nil {
			// Stored identifiers are opaque strings; skip any that do not
			// name a club in this store.
			continue
		}
		clubIDs = append(clubIDs, n)
	}

	eventsRes := h.svc.RecommendedEvents(r.Context(), clubIDs)
	clubsRes := h.svc.AllClubs(r.Context())

	likedSet := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}
	likedClubs := []*models.Club{}
	for _, club := range clubsRes.Clubs {
		if likedSet[strconv.Itoa(club.ID)] {
			likedClubs = append(likedClubs, club)
		}
	}

	start, end := h.svc.RecommendationWindow()
	writeJSON(w, http.StatusOK, map[string]any{
		"window_start": start,
		"window_end":   end,
		"groups":       h.svc.GroupByDay(eventsRes.Events),
		"liked_clubs":  likedClubs,
		"clubs":        clubsRes.Clubs,
	})
}
