package domain

import (
	"fmt"
	"strings"
	"time"
)

// A candidate point of interest submitted by a trip member.
// Places are immutable once submitted; every pipeline stage produces
// derived views rather than mutating them.
type Place struct {
	PlaceID       string
	Name          string
	Location      Coordinates
	Category      string
	MemberID      string
	WishLevel     int // 1..5 ordinal desire to visit
	StayMinutes   int
	PreferredDate *time.Time
}

// NewPlace validates a raw place record at the input boundary.
// Invalid records are rejected here, not discovered mid-pipeline.
func NewPlace(
	placeID string,
	name string,
	location Coordinates,
	category string,
	memberID string,
	wishLevel int,
	stayMinutes int,
	preferredDate *time.Time,
) (*Place, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, fmt.Errorf("new place: %w: place_id must be non-empty", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("new place: %w: place %q name must be non-empty", ErrInvalidInput, placeID)
	}
	if strings.TrimSpace(memberID) == "" {
		return nil, fmt.Errorf("new place: %w: place %q member_id must be non-empty", ErrInvalidInput, placeID)
	}
	if wishLevel < 1 || wishLevel > 5 {
		return nil, fmt.Errorf("new place: %w: place %q wish_level must be in [1,5], got %d", ErrInvalidInput, placeID, wishLevel)
	}
	if location.Lat < -90 || location.Lat > 90 || location.Lng < -180 || location.Lng > 180 {
		return nil, fmt.Errorf("new place: %w: place %q has out-of-range coordinates", ErrInvalidInput, placeID)
	}
	if stayMinutes < 0 {
		return nil, fmt.Errorf("new place: %w: place %q stay_minutes must be non-negative", ErrInvalidInput, placeID)
	}

	return &Place{
		PlaceID:       placeID,
		Name:          name,
		Location:      location,
		Category:      category,
		MemberID:      memberID,
		WishLevel:     wishLevel,
		StayMinutes:   stayMinutes,
		PreferredDate: preferredDate,
	}, nil
}
