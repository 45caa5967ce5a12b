package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clubnights/internal/query"
)

type ClubsHandler struct {
	svc *query.Service
}

func NewClubsHandler(svc *query.Service) *ClubsHandler {
	return &ClubsHandler{svc: svc}
}

// List returns every club ordered by name.
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/clubs [get]
func (h *ClubsHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.svc.AllClubs(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"clubs": res.Clubs})
}

// Get returns a single club by ID.
// @Summary Get a club
// @Tags clubs
// @Produce json
// @Param clubID path int true "club ID"
// @Success 200 {object} models.Club
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/v1/clubs/{clubID} [get]
func (h *ClubsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Club ID must be an integer")
		return
	}

	club, err := h.svc.ClubByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Club not found")
		return
	}
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load club")
		return
	}

	writeJSON(w, http.StatusOK, club)
}
