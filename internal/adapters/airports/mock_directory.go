package airports

import (
	"context"

	"trip-route-service/internal/domain"
)

// MockDirectory serves a fixed airport list for tests. When Err is set,
// every lookup fails with it.
type MockDirectory struct {
	Airports []domain.Airport
	Err      error
}

func (m *MockDirectory) Nearby(_ context.Context, center domain.Coordinates, radiusKm float64) ([]domain.Airport, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]domain.Airport, 0, len(m.Airports))
	for _, a := range m.Airports {
		if center.DistanceKm(a.Location) <= radiusKm {
			out = append(out, a)
		}
	}
	return out, nil
}
