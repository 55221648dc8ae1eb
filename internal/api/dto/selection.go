package dto

import "trip-route-service/internal/domain"

// A place carrying its normalizer-assigned weights, as fed back by the caller.
type NormalizedPlaceInput struct {
	Place              Place   `json:"place"`
	NormalizedWeight   float64 `json:"normalized_weight"`
	FairnessFactor     float64 `json:"fairness_factor"`
	RelativeImportance float64 `json:"relative_importance"`
}

func (n NormalizedPlaceInput) ToDomain() (domain.NormalizedPlace, error) {
	place, err := n.Place.ToDomain()
	if err != nil {
		return domain.NormalizedPlace{}, err
	}
	return domain.NormalizedPlace{
		Place:              *place,
		NormalizedWeight:   n.NormalizedWeight,
		FairnessFactor:     n.FairnessFactor,
		RelativeImportance: n.RelativeImportance,
	}, nil
}

type SelectRequest struct {
	NormalizedPlaces  []NormalizedPlaceInput `json:"normalized_places"`
	Members           []Member               `json:"members"`
	TripDurationDays  int                    `json:"trip_duration_days"`
	MaxPlacesPerDay   int                    `json:"max_places_per_day"`
	FairnessThreshold float64                `json:"fairness_threshold"`
}

type SelectedPlaceResponse struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	MemberID         string  `json:"member_id"`
	NormalizedWeight float64 `json:"normalized_weight"`
}

type SelectResponse struct {
	SelectedPlaces     []SelectedPlaceResponse `json:"selected_places"`
	FairnessScore      float64                 `json:"fairness_score"`
	EfficiencyScore    float64                 `json:"efficiency_score"`
	MemberDistribution map[string]int          `json:"member_distribution"`
	Strategy           string                  `json:"strategy"`
	Rationale          []string                `json:"rationale,omitempty"`
}
