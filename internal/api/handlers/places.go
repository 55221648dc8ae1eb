package handlers

import (
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
)

type PlacesHandler struct {
	Repo ports.TripRepository
}

// List returns the candidate places stored for a trip (read-through to the
// external trip store).
func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	tripID := r.PathValue("id")
	if tripID == "" {
		writeError(w, r, http.StatusBadRequest, "trip id is required")
		return
	}

	places, err := h.Repo.ListPlaces(r.Context(), tripID)
	if err != nil {
		log.Printf("list places failed trip_id=%s err=%v", tripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]dto.Place, 0, len(places))
	for _, p := range places {
		out = append(out, dto.PlaceFromDomain(p))
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"places": out})
}
