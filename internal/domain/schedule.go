package domain

import "time"

// A RouteNode annotated with timing by the Schedule Generator.
type ScheduledStop struct {
	Node RouteNode

	// Order is 1-based within the stop's day.
	Order  int
	// Arrive/Depart are HH:MM on the stop's day; hours exceed 24 when a
	// day overflows midnight ("25:30").
	Arrive string
	Depart string

	// Mode is the transport used to reach this stop. Empty for the first
	// stop of the trip.
	Mode          TransportMode
	TravelMinutes int
}

// One day of the generated itinerary.
type DaySchedule struct {
	Day                int // 1-based
	Stops              []ScheduledStop
	TotalTravelMinutes int
	VisitMinutes       int
}

// The full pipeline output. Cached with a TTL and treated as disposable:
// losing it costs recomputation time, never correctness.
type OptimizationResult struct {
	TripID             string
	Days               []DaySchedule
	FairnessScore      float64
	EfficiencyScore    float64
	OptimizationScore  float64
	TotalTravelMinutes int
	TotalVisitMinutes  int

	// Rationale records absorbed degradations (greedy fallback, directory
	// failures, degenerate inputs) so callers can inspect why a particular
	// selection or route was produced.
	Rationale []string

	ComputedAt time.Time
}
