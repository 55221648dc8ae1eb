package domain

import "fmt"

// TransportMode classifies how a traveler reaches a stop.
type TransportMode string

const (
	ModeWalking TransportMode = "walking"
	ModeCar     TransportMode = "car"
	ModeFlight  TransportMode = "flight"
)

// Per-request trip constraints supplied by the surrounding application.
type TripConstraints struct {
	DurationDays       int
	MaxPlacesPerDay    int
	FairnessThreshold  float64 // minimum acceptable fairness score, 0..1
	PreferredTransport TransportMode
}

func (c TripConstraints) Validate() error {
	if c.DurationDays < 1 {
		return fmt.Errorf("trip constraints: %w: duration_days must be >= 1, got %d", ErrInvalidInput, c.DurationDays)
	}
	if c.MaxPlacesPerDay < 1 {
		return fmt.Errorf("trip constraints: %w: max_places_per_day must be >= 1, got %d", ErrInvalidInput, c.MaxPlacesPerDay)
	}
	if c.FairnessThreshold < 0 || c.FairnessThreshold > 1 {
		return fmt.Errorf("trip constraints: %w: fairness_threshold must be in [0,1], got %g", ErrInvalidInput, c.FairnessThreshold)
	}
	return nil
}

// MaxSelectable is the hard cap on the number of places the Selector may keep.
func (c TripConstraints) MaxSelectable() int {
	return c.DurationDays * c.MaxPlacesPerDay
}

// TripSettings blends fairness against geographic efficiency when the
// normalizer computes final weights. Both knobs are 0..1.
type TripSettings struct {
	FairnessWeight   float64
	EfficiencyWeight float64
}

func (s TripSettings) Validate() error {
	if s.FairnessWeight < 0 || s.FairnessWeight > 1 {
		return fmt.Errorf("trip settings: %w: fairness_weight must be in [0,1], got %g", ErrInvalidInput, s.FairnessWeight)
	}
	if s.EfficiencyWeight < 0 || s.EfficiencyWeight > 1 {
		return fmt.Errorf("trip settings: %w: efficiency_weight must be in [0,1], got %g", ErrInvalidInput, s.EfficiencyWeight)
	}
	return nil
}
