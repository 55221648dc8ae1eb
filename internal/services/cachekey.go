package services

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"trip-route-service/internal/domain"
)

// ResultCacheKey derives the result-cache key (trip_id, places_hash,
// settings_hash) for an optimization request. Place order does not affect
// the key: two requests over the same set hash identically.
func ResultCacheKey(req OptimizeRequest) string {
	ids := make([]string, 0, len(req.Places))
	byID := make(map[string]*domain.Place, len(req.Places))
	for _, p := range req.Places {
		ids = append(ids, p.PlaceID)
		byID[p.PlaceID] = p
	}
	slices.Sort(ids)

	placesHash := xxhash.New()
	for _, id := range ids {
		p := byID[id]
		fmt.Fprintf(placesHash, "%s|%s|%.6f|%.6f|%s|%d|%d;",
			p.PlaceID, p.MemberID, p.Location.Lat, p.Location.Lng,
			p.Category, p.WishLevel, p.StayMinutes)
	}

	settingsHash := xxhash.New()
	fmt.Fprintf(settingsHash, "%.3f|%.3f|%d|%d|%.3f|%s|%.6f|%.6f|%.6f|%.6f",
		req.Settings.FairnessWeight, req.Settings.EfficiencyWeight,
		req.Constraints.DurationDays, req.Constraints.MaxPlacesPerDay,
		req.Constraints.FairnessThreshold, req.Constraints.PreferredTransport,
		req.Departure.Location.Lat, req.Departure.Location.Lng,
		req.Arrival.Location.Lat, req.Arrival.Location.Lng)

	return fmt.Sprintf("optimization:%s:%x:%x", req.TripID, placesHash.Sum64(), settingsHash.Sum64())
}
