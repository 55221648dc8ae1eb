package dto

type NormalizeRequest struct {
	TripID   string   `json:"trip_id"`
	Places   []Place  `json:"places"`
	Members  []Member `json:"members"`
	Settings Settings `json:"settings"`
}

type NormalizedPlaceResponse struct {
	PlaceID          string  `json:"place_id"`
	NormalizedWeight float64 `json:"normalized_weight"`
	FairnessScore    float64 `json:"fairness_score"`
}

type NormalizedUserResponse struct {
	MemberID         string                    `json:"member_id"`
	AvgWishLevel     float64                   `json:"avg_wish_level"`
	NormalizedPlaces []NormalizedPlaceResponse `json:"normalized_places"`
}

type NormalizeResponse struct {
	NormalizedUsers    []NormalizedUserResponse `json:"normalized_users"`
	GroupFairnessScore float64                  `json:"group_fairness_score"`
	Rationale          []string                 `json:"rationale,omitempty"`
}
