package airports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-route-service/internal/domain"
)

func codes(airports []domain.Airport) []string {
	out := make([]string, 0, len(airports))
	for _, a := range airports {
		out = append(out, a.Code)
	}
	return out
}

func TestStaticTableNearbyTokyo(t *testing.T) {
	table := NewStaticTable()

	got, err := table.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.NoError(t, err)

	assert.Contains(t, codes(got), "HND")
	assert.NotContains(t, codes(got), "KIX", "Kansai is ~400 km from central Tokyo")
}

func TestStaticTableRadiusFilters(t *testing.T) {
	table := NewStaticTable()
	center := domain.Coordinates{Lat: 35.68, Lng: 139.76}

	tight, err := table.Nearby(context.Background(), center, 5)
	require.NoError(t, err)
	assert.Empty(t, tight, "Haneda sits ~15 km out")

	wide, err := table.Nearby(context.Background(), center, 600)
	require.NoError(t, err)
	assert.Contains(t, codes(wide), "HND")
	assert.Contains(t, codes(wide), "KIX")
}

func TestStaticTableGlobalScanOutsideRegions(t *testing.T) {
	table := NewStaticTable()

	// Open ocean east of New Zealand: no bounding box matches, and nothing
	// is within range either.
	far, err := table.Nearby(context.Background(), domain.Coordinates{Lat: -45.0, Lng: -160.0}, 150)
	require.NoError(t, err)
	assert.Empty(t, far)

	// Just outside the Japan bounding box but still within reach of Naha:
	// the global scan must pick it up.
	near, err := table.Nearby(context.Background(), domain.Coordinates{Lat: 26.0, Lng: 122.5}, 600)
	require.NoError(t, err)
	assert.Contains(t, codes(near), "OKA")
}

func TestStaticTableOverlappingRegions(t *testing.T) {
	table := NewStaticTable()

	// Strasbourg falls inside both the France and Germany boxes; both
	// regions must be searched.
	got, err := table.Nearby(context.Background(), domain.Coordinates{Lat: 48.57, Lng: 7.75}, 500)
	require.NoError(t, err)

	assert.Contains(t, codes(got), "CDG")
	assert.Contains(t, codes(got), "FRA")
}

func TestMockDirectoryFiltersByRadius(t *testing.T) {
	dir := &MockDirectory{Airports: []domain.Airport{
		{Code: "HND", Location: domain.Coordinates{Lat: 35.5494, Lng: 139.7798}},
		{Code: "KIX", Location: domain.Coordinates{Lat: 34.4347, Lng: 135.2441}},
	}}

	got, err := dir.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.NoError(t, err)
	assert.Equal(t, []string{"HND"}, codes(got))
}
