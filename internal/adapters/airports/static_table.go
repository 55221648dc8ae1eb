package airports

import (
	"context"

	"trip-route-service/internal/domain"
)

// StaticTable is the built-in fallback airport directory: a small table of
// major airports keyed by coarse country bounding boxes. It never fails and
// needs no network, which makes it the terminal fallback when the external
// directory is unreachable.
type StaticTable struct {
	regions []region
}

type bbox struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

func (b bbox) contains(c domain.Coordinates) bool {
	return c.Lat >= b.minLat && c.Lat <= b.maxLat && c.Lng >= b.minLng && c.Lng <= b.maxLng
}

type region struct {
	name     string
	bounds   bbox
	airports []domain.Airport
}

func NewStaticTable() *StaticTable {
	return &StaticTable{regions: builtinRegions}
}

// Nearby returns the known airports within radiusKm of center, searching the
// regions whose bounding box contains the point first and falling back to a
// global scan when the point lies outside every region.
func (s *StaticTable) Nearby(_ context.Context, center domain.Coordinates, radiusKm float64) ([]domain.Airport, error) {
	var out []domain.Airport

	matched := false
	for _, r := range s.regions {
		if !r.bounds.contains(center) {
			continue
		}
		matched = true
		for _, a := range r.airports {
			if center.DistanceKm(a.Location) <= radiusKm {
				out = append(out, a)
			}
		}
	}
	if matched {
		return out, nil
	}

	for _, r := range s.regions {
		for _, a := range r.airports {
			if center.DistanceKm(a.Location) <= radiusKm {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// Coarse bounding boxes; overlaps are fine because all matching regions are
// searched.
var builtinRegions = []region{
	{
		name:   "japan",
		bounds: bbox{minLat: 24, maxLat: 46, minLng: 123, maxLng: 146},
		airports: []domain.Airport{
			{Code: "HND", Name: "Tokyo Haneda", Location: domain.Coordinates{Lat: 35.5494, Lng: 139.7798}, Tier: 1},
			{Code: "KIX", Name: "Kansai International", Location: domain.Coordinates{Lat: 34.4347, Lng: 135.2441}, Tier: 1},
			{Code: "CTS", Name: "New Chitose", Location: domain.Coordinates{Lat: 42.7752, Lng: 141.6923}, Tier: 2},
			{Code: "FUK", Name: "Fukuoka", Location: domain.Coordinates{Lat: 33.5859, Lng: 130.4507}, Tier: 2},
			{Code: "OKA", Name: "Naha", Location: domain.Coordinates{Lat: 26.1958, Lng: 127.6459}, Tier: 2},
		},
	},
	{
		name:   "united_states",
		bounds: bbox{minLat: 24, maxLat: 50, minLng: -125, maxLng: -66},
		airports: []domain.Airport{
			{Code: "JFK", Name: "John F. Kennedy International", Location: domain.Coordinates{Lat: 40.6413, Lng: -73.7781}, Tier: 1},
			{Code: "LAX", Name: "Los Angeles International", Location: domain.Coordinates{Lat: 33.9416, Lng: -118.4085}, Tier: 1},
			{Code: "ORD", Name: "Chicago O'Hare", Location: domain.Coordinates{Lat: 41.9742, Lng: -87.9073}, Tier: 1},
			{Code: "SFO", Name: "San Francisco International", Location: domain.Coordinates{Lat: 37.6213, Lng: -122.3790}, Tier: 1},
			{Code: "MIA", Name: "Miami International", Location: domain.Coordinates{Lat: 25.7959, Lng: -80.2870}, Tier: 2},
		},
	},
	{
		name:   "united_kingdom",
		bounds: bbox{minLat: 49, maxLat: 61, minLng: -8, maxLng: 2},
		airports: []domain.Airport{
			{Code: "LHR", Name: "London Heathrow", Location: domain.Coordinates{Lat: 51.4700, Lng: -0.4543}, Tier: 1},
			{Code: "MAN", Name: "Manchester", Location: domain.Coordinates{Lat: 53.3537, Lng: -2.2750}, Tier: 2},
		},
	},
	{
		name:   "france",
		bounds: bbox{minLat: 41, maxLat: 51.5, minLng: -5, maxLng: 9.8},
		airports: []domain.Airport{
			{Code: "CDG", Name: "Paris Charles de Gaulle", Location: domain.Coordinates{Lat: 49.0097, Lng: 2.5479}, Tier: 1},
			{Code: "NCE", Name: "Nice Cote d'Azur", Location: domain.Coordinates{Lat: 43.6584, Lng: 7.2159}, Tier: 2},
		},
	},
	{
		name:   "germany",
		bounds: bbox{minLat: 47, maxLat: 55.1, minLng: 5.8, maxLng: 15.1},
		airports: []domain.Airport{
			{Code: "FRA", Name: "Frankfurt", Location: domain.Coordinates{Lat: 50.0379, Lng: 8.5622}, Tier: 1},
			{Code: "MUC", Name: "Munich", Location: domain.Coordinates{Lat: 48.3538, Lng: 11.7861}, Tier: 1},
		},
	},
	{
		name:   "spain",
		bounds: bbox{minLat: 36, maxLat: 43.8, minLng: -9.3, maxLng: 3.4},
		airports: []domain.Airport{
			{Code: "MAD", Name: "Madrid Barajas", Location: domain.Coordinates{Lat: 40.4983, Lng: -3.5676}, Tier: 1},
			{Code: "BCN", Name: "Barcelona El Prat", Location: domain.Coordinates{Lat: 41.2971, Lng: 2.0785}, Tier: 1},
		},
	},
	{
		name:   "italy",
		bounds: bbox{minLat: 36.6, maxLat: 47.1, minLng: 6.6, maxLng: 18.6},
		airports: []domain.Airport{
			{Code: "FCO", Name: "Rome Fiumicino", Location: domain.Coordinates{Lat: 41.8003, Lng: 12.2389}, Tier: 1},
			{Code: "MXP", Name: "Milan Malpensa", Location: domain.Coordinates{Lat: 45.6306, Lng: 8.7281}, Tier: 1},
		},
	},
	{
		name:   "south_korea",
		bounds: bbox{minLat: 33, maxLat: 38.7, minLng: 124.5, maxLng: 131},
		airports: []domain.Airport{
			{Code: "ICN", Name: "Incheon International", Location: domain.Coordinates{Lat: 37.4602, Lng: 126.4407}, Tier: 1},
		},
	},
	{
		name:   "australia",
		bounds: bbox{minLat: -44, maxLat: -10, minLng: 112, maxLng: 154},
		airports: []domain.Airport{
			{Code: "SYD", Name: "Sydney Kingsford Smith", Location: domain.Coordinates{Lat: -33.9399, Lng: 151.1753}, Tier: 1},
			{Code: "MEL", Name: "Melbourne Tullamarine", Location: domain.Coordinates{Lat: -37.6690, Lng: 144.8410}, Tier: 1},
		},
	},
}
