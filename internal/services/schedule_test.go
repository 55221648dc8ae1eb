package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-route-service/internal/domain"
)

func TestGenerateScheduleEmptySelection(t *testing.T) {
	route := []domain.RouteNode{
		domain.TerminalNode("Start", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.TerminalNode("End", domain.Coordinates{Lat: 35.70, Lng: 139.80}),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	require.Len(t, days[0].Stops, 2)
	assert.Equal(t, "Start", days[0].Stops[0].Node.Name)
	assert.Equal(t, "End", days[0].Stops[1].Node.Name)
	assert.Zero(t, days[0].VisitMinutes, "no places means zero visit time")
	assert.Equal(t, "09:00", days[0].Stops[0].Arrive)
}

func TestGenerateScheduleWalkingUnder50Km(t *testing.T) {
	route := []domain.RouteNode{
		domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.PlaceNode(normalized(t, "p1", "m1", 1.0, 35.69, 139.77, "sightseeing")),
		domain.TerminalNode("Station", domain.Coordinates{Lat: 35.70, Lng: 139.80}),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	for _, stop := range days[0].Stops[1:] {
		assert.Equal(t, domain.ModeWalking, stop.Mode, "segments under 50 km are walked, never flown")
	}
}

func TestGenerateScheduleModeByDistance(t *testing.T) {
	hnd := domain.Airport{Code: "HND", Name: "Tokyo Haneda", Location: domain.Coordinates{Lat: 35.5494, Lng: 139.7798}, Tier: 1}
	kix := domain.Airport{Code: "KIX", Name: "Kansai International", Location: domain.Coordinates{Lat: 34.4347, Lng: 135.2441}, Tier: 1}

	route := []domain.RouteNode{
		domain.TerminalNode("Tokyo Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.AirportNode(hnd, 0, true),
		domain.AirportNode(kix, 0, false),
		domain.PlaceNode(normalized(t, "osaka-castle", "m1", 1.2, 34.6873, 135.5262, "sightseeing")),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	stops := days[0].Stops
	require.Len(t, stops, 4)

	assert.Equal(t, domain.ModeWalking, stops[1].Mode, "hotel to HND is short")
	assert.Equal(t, domain.ModeFlight, stops[2].Mode, "airport to airport over 300 km flies")
	assert.Equal(t, domain.ModeWalking, stops[3].Mode, "KIX to the castle is short")

	// ~400 km at 650 km/h plus the 120-minute airport buffer.
	assert.Greater(t, stops[2].TravelMinutes, 120)
	assert.Less(t, stops[2].TravelMinutes, 240)
}

func TestGenerateScheduleLongGroundSegmentIsCarNotFlight(t *testing.T) {
	// Over 300 km but without airport nodes on both ends: stays a car leg.
	route := []domain.RouteNode{
		domain.TerminalNode("Tokyo", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.PlaceNode(normalized(t, "osaka", "m1", 1.0, 34.6873, 135.5262, "sightseeing")),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	assert.Equal(t, domain.ModeCar, days[0].Stops[1].Mode)
}

func TestGenerateScheduleSplitsDaysAtPlaceCap(t *testing.T) {
	route := []domain.RouteNode{
		domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
	}
	for i := 0; i < 4; i++ {
		route = append(route, domain.PlaceNode(
			normalized(t, string(rune('a'+i)), "m1", 1.0, 35.69+float64(i)*0.01, 139.77, "sightseeing")))
	}
	route = append(route, domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}))

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 2, MaxPlacesPerDay: 2})

	require.Len(t, days, 2, "four places at two per day fill two days")
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "09:00", days[0].Stops[0].Arrive, "each day starts at the fixed day start")

	for _, d := range days {
		placeCount := 0
		for i, stop := range d.Stops {
			assert.Equal(t, i+1, stop.Order, "order is 1-based within the day")
			if stop.Node.Kind == domain.NodePlace {
				placeCount++
			}
		}
		assert.LessOrEqual(t, placeCount, 2)
	}
}

func TestGenerateScheduleRunningClock(t *testing.T) {
	// One place 60 minutes of stay right next to the hotel.
	route := []domain.RouteNode{
		domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.PlaceNode(normalized(t, "p1", "m1", 1.0, 35.68, 139.76, "sightseeing")),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	stops := days[0].Stops
	require.Len(t, stops, 2)

	assert.Equal(t, "09:00", stops[1].Arrive, "zero-distance hop arrives immediately")
	assert.Equal(t, "10:00", stops[1].Depart, "departure is arrival plus stay duration")
	assert.Equal(t, 60, days[0].VisitMinutes)
}

func TestGenerateScheduleOverflowsPastMidnightWithoutWrapping(t *testing.T) {
	// ~900 km ground leg: fifteen hours by car from a 09:00 start lands the
	// arrival past midnight.
	route := []domain.RouteNode{
		domain.TerminalNode("Hotel", domain.Coordinates{Lat: 35.68, Lng: 139.76}),
		domain.PlaceNode(normalized(t, "far", "m1", 1.0, 27.57, 139.76, "sightseeing")),
	}

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 4})

	require.Len(t, days, 1)
	stops := days[0].Stops
	require.Len(t, stops, 2)

	assert.GreaterOrEqual(t, stops[1].Arrive, "24:00",
		"post-midnight arrival keeps running hours, never wraps to the next morning")
	assert.Greater(t, stops[1].Depart, stops[1].Arrive)
}

func TestGenerateScheduleVisitsEveryNodeOnce(t *testing.T) {
	route := []domain.RouteNode{
		domain.TerminalNode("Start", domain.Coordinates{Lat: 35.0, Lng: 139.0}),
	}
	pool := testPool(t, 9, []string{"m1", "m2"})
	for _, p := range pool {
		route = append(route, domain.PlaceNode(p))
	}
	route = append(route, domain.TerminalNode("End", domain.Coordinates{Lat: 35.5, Lng: 139.5}))

	days := GenerateSchedule(route, domain.TripConstraints{DurationDays: 3, MaxPlacesPerDay: 3})

	total := 0
	for _, d := range days {
		total += len(d.Stops)
	}
	assert.Equal(t, len(route), total, "every route node is scheduled exactly once")
	assert.LessOrEqual(t, len(days), 3+1, "day count tracks the place cap")
}
