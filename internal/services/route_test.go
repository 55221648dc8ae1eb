package services

import (
	"testing"

	"trip-route-service/internal/domain"
)

func TestConstructRouteNearestNeighborOrder(t *testing.T) {
	departure := domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76})
	arrival := domain.TerminalNode("Station", domain.Coordinates{Lat: 35.70, Lng: 139.80})

	// A is nearest to the hotel, C is nearest to A, B nearest to C.
	selected := []domain.NormalizedPlace{
		normalized(t, "B", "m1", 1.0, 35.90, 139.90, "sightseeing"),
		normalized(t, "A", "m1", 1.0, 35.69, 139.77, "sightseeing"),
		normalized(t, "C", "m2", 1.0, 35.75, 139.82, "sightseeing"),
	}

	route := ConstructRoute(departure, arrival, selected)

	if len(route) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(route))
	}
	if route[0].Name != "Hotel" {
		t.Fatalf("route must start at the departure point, got %q", route[0].Name)
	}
	if route[len(route)-1].Name != "Station" {
		t.Fatalf("route must end at the arrival point, got %q", route[len(route)-1].Name)
	}

	if route[1].Place.Place.PlaceID != "A" {
		t.Fatalf("expected first stop A, got %q", route[1].Place.Place.PlaceID)
	}
	if route[2].Place.Place.PlaceID != "C" {
		t.Fatalf("expected second stop C, got %q", route[2].Place.Place.PlaceID)
	}
	if route[3].Place.Place.PlaceID != "B" {
		t.Fatalf("expected third stop B, got %q", route[3].Place.Place.PlaceID)
	}
}

func TestConstructRouteNeverDropsPlaces(t *testing.T) {
	departure := domain.TerminalNode("Start", domain.Coordinates{Lat: 35.0, Lng: 139.0})
	arrival := domain.TerminalNode("End", domain.Coordinates{Lat: 36.0, Lng: 140.0})

	selected := testPool(t, 25, []string{"m1", "m2", "m3"})
	route := ConstructRoute(departure, arrival, selected)

	if len(route) != len(selected)+2 {
		t.Fatalf("expected %d nodes, got %d", len(selected)+2, len(route))
	}

	seen := make(map[string]int)
	for _, node := range route[1 : len(route)-1] {
		if node.Kind != domain.NodePlace {
			t.Fatalf("unexpected node kind %q inside route", node.Kind)
		}
		seen[node.Place.Place.PlaceID]++
	}
	for _, p := range selected {
		if seen[p.Place.PlaceID] != 1 {
			t.Fatalf("place %q visited %d times, want exactly once", p.Place.PlaceID, seen[p.Place.PlaceID])
		}
	}
}

func TestConstructRouteEmptySelection(t *testing.T) {
	departure := domain.TerminalNode("Start", domain.Coordinates{Lat: 35.0, Lng: 139.0})
	arrival := domain.TerminalNode("End", domain.Coordinates{Lat: 36.0, Lng: 140.0})

	route := ConstructRoute(departure, arrival, nil)

	if len(route) != 2 {
		t.Fatalf("expected [departure, arrival], got %d nodes", len(route))
	}
	if route[0].Name != "Start" || route[1].Name != "End" {
		t.Fatalf("unexpected endpoints: %q -> %q", route[0].Name, route[1].Name)
	}
}
