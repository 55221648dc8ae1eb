package services

import (
	"slices"

	"trip-route-service/internal/domain"
)

// greedySelect is the fallback selection strategy: take places by descending
// normalized weight, keeping each only if the running fairness score stays
// at or above the threshold, and stop at the size cap.
//
// Best-effort: when no addition can satisfy the threshold the result may sit
// below it; callers record that rationale rather than failing.
func greedySelect(places []domain.NormalizedPlace, constraints domain.TripConstraints) []domain.NormalizedPlace {
	maxCount := constraints.MaxSelectable()

	sorted := slices.Clone(places)
	slices.SortFunc(sorted, func(a, b domain.NormalizedPlace) int {
		if a.NormalizedWeight > b.NormalizedWeight {
			return -1
		}
		if a.NormalizedWeight < b.NormalizedWeight {
			return 1
		}
		// Tie-breaker ensures deterministic ordering when weights are equal.
		if a.Place.PlaceID < b.Place.PlaceID {
			return -1
		}
		if a.Place.PlaceID > b.Place.PlaceID {
			return 1
		}
		return 0
	})

	selected := make([]domain.NormalizedPlace, 0, maxCount)
	for _, p := range sorted {
		if len(selected) >= maxCount {
			break
		}

		tentative := append(slices.Clone(selected), p)
		if len(selected) == 0 || FairnessScore(tentative) >= constraints.FairnessThreshold {
			selected = tentative
		}
	}

	return selected
}
