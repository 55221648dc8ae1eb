package domain

// An airport from the external directory (or the built-in fallback table).
// Tier ranks size/capability: 1 is a major international hub, 3 regional.
type Airport struct {
	Code     string // IATA
	Name     string
	Location Coordinates
	Tier     int
}
