package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Port: read-only boundary to the Place/Member store owned by the
// surrounding application. The engine never writes through it.
type TripRepository interface {
	// Retrieve all candidate places submitted for a trip.
	ListPlaces(ctx context.Context, tripID string) ([]*domain.Place, error)
	// Retrieve all participants of a trip.
	ListMembers(ctx context.Context, tripID string) ([]*domain.Member, error)
}
