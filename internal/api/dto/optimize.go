package dto

import (
	"time"

	"trip-route-service/internal/domain"
)

type RoutePoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p RoutePoint) ToDomain() domain.RouteNode {
	return domain.TerminalNode(p.Name, domain.Coordinates{Lat: p.Latitude, Lng: p.Longitude})
}

type OptimizeRequest struct {
	TripID   string `json:"trip_id"`
	MemberID string `json:"member_id"`

	// Places may be omitted; the engine then loads them from the trip store.
	Places  []Place  `json:"places,omitempty"`
	Members []Member `json:"members"`

	DeparturePoint RoutePoint  `json:"departure_point"`
	ArrivalPoint   RoutePoint  `json:"arrival_point"`
	Constraints    Constraints `json:"constraints"`
	Settings       Settings    `json:"settings"`
}

type ScheduledStopResponse struct {
	Order             int     `json:"order"`
	Name              string  `json:"name"`
	Kind              string  `json:"kind"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	ArrivalTime       string  `json:"arrival_time"`
	DepartureTime     string  `json:"departure_time"`
	TransportMode     string  `json:"transport_mode,omitempty"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
}

type DayScheduleResponse struct {
	Day              int                     `json:"day"`
	ScheduledPlaces  []ScheduledStopResponse `json:"scheduled_places"`
	TotalTravelTime  int                     `json:"total_travel_time"`
	VisitTimeMinutes int                     `json:"visit_time_minutes"`
}

type OptimizeResponse struct {
	TripID             string                `json:"trip_id"`
	DailySchedules     []DayScheduleResponse `json:"daily_schedules"`
	OptimizationScore  float64               `json:"optimization_score"`
	FairnessScore      float64               `json:"fairness_score"`
	EfficiencyScore    float64               `json:"efficiency_score"`
	TotalTravelMinutes int                   `json:"total_travel_minutes"`
	TotalVisitMinutes  int                   `json:"total_visit_minutes"`
	Rationale          []string              `json:"rationale,omitempty"`
	ComputedAt         time.Time             `json:"computed_at"`
}

// OptimizeResponseFrom maps the domain result onto the wire shape.
func OptimizeResponseFrom(r *domain.OptimizationResult) OptimizeResponse {
	days := make([]DayScheduleResponse, 0, len(r.Days))
	for _, d := range r.Days {
		stops := make([]ScheduledStopResponse, 0, len(d.Stops))
		for _, s := range d.Stops {
			stops = append(stops, ScheduledStopResponse{
				Order:             s.Order,
				Name:              s.Node.Name,
				Kind:              string(s.Node.Kind),
				Latitude:          s.Node.Location.Lat,
				Longitude:         s.Node.Location.Lng,
				ArrivalTime:       s.Arrive,
				DepartureTime:     s.Depart,
				TransportMode:     string(s.Mode),
				TravelTimeMinutes: s.TravelMinutes,
			})
		}
		days = append(days, DayScheduleResponse{
			Day:              d.Day,
			ScheduledPlaces:  stops,
			TotalTravelTime:  d.TotalTravelMinutes,
			VisitTimeMinutes: d.VisitMinutes,
		})
	}

	return OptimizeResponse{
		TripID:             r.TripID,
		DailySchedules:     days,
		OptimizationScore:  r.OptimizationScore,
		FairnessScore:      r.FairnessScore,
		EfficiencyScore:    r.EfficiencyScore,
		TotalTravelMinutes: r.TotalTravelMinutes,
		TotalVisitMinutes:  r.TotalVisitMinutes,
		Rationale:          r.Rationale,
		ComputedAt:         r.ComputedAt,
	}
}
