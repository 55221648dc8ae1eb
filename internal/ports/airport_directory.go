package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for looking up airports near a coordinate.
// Implementations must respect the context deadline; callers treat any
// error or empty result as a signal to use the static fallback table.
type AirportDirectory interface {
	// Return airports within radiusKm of center.
	Nearby(ctx context.Context, center domain.Coordinates, radiusKm float64) ([]domain.Airport, error)
}
