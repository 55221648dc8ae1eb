package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"
)

type NormalizeHandler struct{}

// Normalize converts raw member wish levels into fairness-adjusted weights.
// Pure computation; the only hard failure is invalid input.
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req dto.NormalizeRequest

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

	if strings.TrimSpace(req.TripID) == "" {
		writeError(w, r, http.StatusBadRequest, "trip_id is required")
		return
	}
	if len(req.Members) == 0 {
		writeError(w, r, http.StatusBadRequest, "members are required")
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

	result, err := services.NormalizePreferences(services.NormalizeRequest{
		TripID:   req.TripID,
		Places:   places,
		Members:  members,
		Settings: req.Settings.ToDomain(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("normalize failed trip_id=%s err=%v", req.TripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.NormalizeResponse{
		NormalizedUsers:    make([]dto.NormalizedUserResponse, 0, len(result.Members)),
		GroupFairnessScore: result.GroupFairnessScore,
		Rationale:          result.Rationale,
	}
	for _, m := range result.Members {
		user := dto.NormalizedUserResponse{
			MemberID:         m.MemberID,
			AvgWishLevel:     m.AvgWishLevel,
			NormalizedPlaces: make([]dto.NormalizedPlaceResponse, 0, len(m.Places)),
		}
		for _, p := range m.Places {
			user.NormalizedPlaces = append(user.NormalizedPlaces, dto.NormalizedPlaceResponse{
				PlaceID:          p.Place.PlaceID,
				NormalizedWeight: p.NormalizedWeight,
				FairnessScore:    p.FairnessFactor,
			})
		}
		res.NormalizedUsers = append(res.NormalizedUsers, user)
	}

	writeJSON(w, r, http.StatusOK, res)
}
