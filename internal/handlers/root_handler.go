package handlers

import "net/http"

// Root answers the bare service URL with a small identification payload.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSONMessage(w, http.StatusOK, "clubnights API")
}
