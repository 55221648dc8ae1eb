package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"
)

type SelectHandler struct {
	Hyper   services.Hyperparameters
	Weights services.FitnessWeights
}

// Select chooses a feasible subset of normalized places under count and
// fairness constraints.
func (h *SelectHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRequest

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

	places := make([]domain.NormalizedPlace, 0, len(req.NormalizedPlaces))
	for _, np := range req.NormalizedPlaces {
		place, err := np.ToDomain()
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

	constraints := domain.TripConstraints{
		DurationDays:      req.TripDurationDays,
		MaxPlacesPerDay:   req.MaxPlacesPerDay,
		FairnessThreshold: req.FairnessThreshold,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := services.SelectPlaces(services.SelectionRequest{
		Places:      places,
		Members:     members,
		Constraints: constraints,
	}, h.Hyper, h.Weights, rng)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("select failed err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SelectResponse{
		SelectedPlaces:     make([]dto.SelectedPlaceResponse, 0, len(result.Selected)),
		FairnessScore:      result.FairnessScore,
		EfficiencyScore:    result.EfficiencyScore,
		MemberDistribution: result.MemberDistribution,
		Strategy:           result.Strategy,
		Rationale:          result.Rationale,
	}
	for _, p := range result.Selected {
		res.SelectedPlaces = append(res.SelectedPlaces, dto.SelectedPlaceResponse{
			PlaceID:          p.Place.PlaceID,
			Name:             p.Place.Name,
			MemberID:         p.Place.MemberID,
			NormalizedWeight: p.NormalizedWeight,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
