package services

import (
	"fmt"

	"trip-route-service/internal/domain"
)

// Travel speed and timing constants used by the schedule generator.
const (
	dayStartMinutes = 9 * 60 // 09:00

	walkingSpeedKmh = 5.0
	carSpeedKmh     = 60.0
	flightSpeedKmh  = 650.0
	// Faster cruise assumption for long legs.
	longFlightSpeedKmh = 850.0
	longFlightKm       = 1000.0

	walkingMaxKm = 50.0
	carMaxKm     = 300.0

	// Fixed check-in/security/baggage buffer added to every flight leg.
	airportBufferMinutes     = 120
	longAirportBufferMinutes = 180
)

// GenerateSchedule walks the ordered route, maintaining a running clock from
// a fixed day start, and emits per-day stops with arrival/departure times,
// transport modes, and aggregate travel/visit statistics.
//
// A day closes once it holds maxPlacesPerDay place stops; inserted airports
// ride along with the segment that needed them and do not count against the
// cap. Every day restarts the clock at the fixed day start.
func GenerateSchedule(route []domain.RouteNode, constraints domain.TripConstraints) []domain.DaySchedule {
	if len(route) == 0 {
		return []domain.DaySchedule{}
	}

	days := []domain.DaySchedule{{Day: 1}}
	clock := dayStartMinutes
	placesInDay := 0

	for i, node := range route {
		current := &days[len(days)-1]

		if node.Kind == domain.NodePlace && placesInDay >= constraints.MaxPlacesPerDay {
			days = append(days, domain.DaySchedule{Day: len(days) + 1})
			current = &days[len(days)-1]
			clock = dayStartMinutes
			placesInDay = 0
		}

		travelMinutes := 0
		var mode domain.TransportMode
		if i > 0 {
			prev := route[i-1]
			mode, travelMinutes = classifySegment(prev, node)
			clock += travelMinutes
		}

		arrive := clock
		clock += node.StayMinutes

		current.Stops = append(current.Stops, domain.ScheduledStop{
			Node:          node,
			Order:         len(current.Stops) + 1,
			Arrive:        formatClock(arrive),
			Depart:        formatClock(clock),
			Mode:          mode,
			TravelMinutes: travelMinutes,
		})
		current.TotalTravelMinutes += travelMinutes

		switch node.Kind {
		case domain.NodePlace:
			current.VisitMinutes += node.StayMinutes
			placesInDay++
		case domain.NodeAirport:
			// Airport dwell is travel overhead, not visit time.
			current.TotalTravelMinutes += node.StayMinutes
		}
	}

	return days
}

// classifySegment picks the transport mode for one route leg and computes
// its travel time in minutes.
//
// Flights require airport nodes on both ends; a long ground segment without
// them stays a car leg.
func classifySegment(from, to domain.RouteNode) (domain.TransportMode, int) {
	dist := from.Location.DistanceKm(to.Location)

	switch {
	case dist > carMaxKm && from.Kind == domain.NodeAirport && to.Kind == domain.NodeAirport:
		speed := flightSpeedKmh
		buffer := airportBufferMinutes
		if dist > longFlightKm {
			speed = longFlightSpeedKmh
			buffer = longAirportBufferMinutes
		}
		return domain.ModeFlight, int(dist/speed*60+0.5) + buffer
	case dist >= walkingMaxKm:
		return domain.ModeCar, int(dist/carSpeedKmh*60 + 0.5)
	default:
		return domain.ModeWalking, int(dist/walkingSpeedKmh*60 + 0.5)
	}
}

// formatClock renders minutes-since-midnight as HH:MM. Hours run past 24
// ("25:30") when a day overflows midnight, so late stops stay ordered and
// unambiguous instead of silently wrapping to the next morning.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
