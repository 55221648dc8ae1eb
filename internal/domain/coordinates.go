package domain

import "math"

// Immutable geographic coordinates (latitude, longitude), WGS 84.
type Coordinates struct {
	Lat float64
	Lng float64
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance to other, in kilometers.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// IsZero reports whether the coordinates carry the (0,0) null-island value,
// which the engine treats as "not set".
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}
