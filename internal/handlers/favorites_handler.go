package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubnights/internal/favorites"
	"clubnights/internal/middleware"
)

// FavoritesHandler exposes the profile-scoped liked-clubs set. Club IDs are
// kept as strings here: the store holds opaque identifiers, the query layer
// parses them when it needs integers.
type FavoritesHandler struct {
	store favorites.Store
}

func NewFavoritesHandler(store favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: store}
}

// List returns the liked club IDs of the current profile.
// @Summary List liked clubs
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	liked := h.store.Liked(middleware.ProfileID(r))
	writeJSON(w, http.StatusOK, map[string]any{"club_ids": liked})
}

// Toggle flips the liked state of a club and reports the new state.
// @Summary Toggle a liked club
// @Tags favorites
// @Produce json
// @Param clubID path string true "club identifier"
// @Success 200 {object} map[string]any
// @Router /api/v1/favorites/{clubID} [post]
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if clubID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Club ID is required")
		return
	}

	liked := h.store.Toggle(middleware.ProfileID(r), clubID)
	writeJSON(w, http.StatusOK, map[string]any{"club_id": clubID, "liked": liked})
}

// Get reports whether a club is liked by the current profile.
// @Summary Check a liked club
// @Tags favorites
// @Produce json
// @Param clubID path string true "club identifier"
// @Success 200 {object} map[string]any
// @Router /api/v1/favorites/{clubID} [get]
func (h *FavoritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if clubID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Club ID is required")
		return
	}

	liked := h.store.IsLiked(middleware.ProfileID(r), clubID)
	writeJSON(w, http.StatusOK, map[string]any{"club_id": clubID, "liked": liked})
}
