package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"
)

type OptimizeHandler struct {
	Engine *services.Engine
}

// Optimize runs the full pipeline (normalize, select, route, schedule) for a
// trip, served through the result cache.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	places := make([]*domain.Place, 0, len(req.Places))
	for _, p := range req.Places {
		place, err := p.ToDomain()
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		places = append(places, place)
	}

	members := make([]*domain.Member, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, m.ToDomain())
	}

	result, err := h.Engine.Optimize(r.Context(), services.OptimizeRequest{
		TripID:      req.TripID,
		MemberID:    req.MemberID,
		Places:      places,
		Members:     members,
		Departure:   req.DeparturePoint.ToDomain(),
		Arrival:     req.ArrivalPoint.ToDomain(),
		Constraints: req.Constraints.ToDomain(),
		Settings:    req.Settings.ToDomain(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("optimize failed trip_id=%s err=%v", req.TripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.OptimizeResponseFrom(result))
}
