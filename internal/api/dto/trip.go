package dto

import (
	"time"

	"trip-route-service/internal/domain"
)

type Place struct {
	PlaceID       string     `json:"place_id"`
	Name          string     `json:"name"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Category      string     `json:"category"`
	MemberID      string     `json:"member_id"`
	WishLevel     int        `json:"wish_level"`
	StayMinutes   int        `json:"stay_minutes"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
}

// ToDomain validates the raw record at the input boundary.
func (p Place) ToDomain() (*domain.Place, error) {
	return domain.NewPlace(
		p.PlaceID,
		p.Name,
		domain.Coordinates{Lat: p.Latitude, Lng: p.Longitude},
		p.Category,
		p.MemberID,
		p.WishLevel,
		p.StayMinutes,
		p.PreferredDate,
	)
}

func PlaceFromDomain(p *domain.Place) Place {
	return Place{
		PlaceID:       p.PlaceID,
		Name:          p.Name,
		Latitude:      p.Location.Lat,
		Longitude:     p.Location.Lng,
		Category:      p.Category,
		MemberID:      p.MemberID,
		WishLevel:     p.WishLevel,
		StayMinutes:   p.StayMinutes,
		PreferredDate: p.PreferredDate,
	}
}

type Member struct {
	MemberID     string `json:"member_id"`
	DisplayName  string `json:"display_name"`
	CanAddPlaces bool   `json:"can_add_places"`
}

func (m Member) ToDomain() *domain.Member {
	return &domain.Member{
		MemberID:     m.MemberID,
		DisplayName:  m.DisplayName,
		CanAddPlaces: m.CanAddPlaces,
	}
}

type Settings struct {
	FairnessWeight   float64 `json:"fairness_weight"`
	EfficiencyWeight float64 `json:"efficiency_weight"`
}

func (s Settings) ToDomain() domain.TripSettings {
	return domain.TripSettings{
		FairnessWeight:   s.FairnessWeight,
		EfficiencyWeight: s.EfficiencyWeight,
	}
}

type Constraints struct {
	TripDurationDays   int     `json:"trip_duration_days"`
	MaxPlacesPerDay    int     `json:"max_places_per_day"`
	FairnessThreshold  float64 `json:"fairness_threshold"`
	PreferredTransport string  `json:"preferred_transport"`
}

func (c Constraints) ToDomain() domain.TripConstraints {
	return domain.TripConstraints{
		DurationDays:       c.TripDurationDays,
		MaxPlacesPerDay:    c.MaxPlacesPerDay,
		FairnessThreshold:  c.FairnessThreshold,
		PreferredTransport: domain.TransportMode(c.PreferredTransport),
	}
}
