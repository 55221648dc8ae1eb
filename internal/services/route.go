package services

import (
	"trip-route-service/internal/domain"
)

// ConstructRoute orders the selected places into a single path between the
// fixed departure and arrival points using greedy nearest-neighbor over
// great-circle distance.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (fixed-endpoint TSP is NP-hard);
// the design prioritizes determinism and simplicity over optimality.
func ConstructRoute(
	departure domain.RouteNode,
	arrival domain.RouteNode,
	selected []domain.NormalizedPlace,
) []domain.RouteNode {
	route := make([]domain.RouteNode, 0, len(selected)+2)
	route = append(route, departure)

	remaining := make(map[string]domain.NormalizedPlace, len(selected))
	for _, p := range selected {
		remaining[p.Place.PlaceID] = p
	}

	current := departure.Location

	for len(remaining) > 0 {
		var bestID string
		bestDist := -1.0

		// Select the nearest unvisited place (greedy step).
		for id, p := range remaining {
			d := current.DistanceKm(p.Place.Location)
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if bestDist < 0 || d < bestDist || (d == bestDist && id < bestID) {
				bestDist = d
				bestID = id
			}
		}

		next := remaining[bestID]
		route = append(route, domain.PlaceNode(next))
		current = next.Place.Location
		delete(remaining, bestID)
	}

	route = append(route, arrival)
	return route
}
