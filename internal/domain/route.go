package domain

// NodeKind distinguishes what a RouteNode wraps.
type NodeKind string

const (
	// NodeTerminal marks the fixed departure or arrival point of the trip.
	NodeTerminal NodeKind = "terminal"
	NodePlace    NodeKind = "place"
	NodeAirport  NodeKind = "airport"
)

// A single stop in the constructed route: a selected place, an inserted
// airport, or one of the fixed trip endpoints.
// RouteNodes are immutable planning data and contain no side effects.
type RouteNode struct {
	Kind        NodeKind
	Name        string
	Location    Coordinates
	StayMinutes int

	// Place is set for NodePlace nodes.
	Place *NormalizedPlace
	// Airport is set for NodeAirport nodes.
	Airport *Airport

	// SegmentIndex records, for inserted airports, the index of the original
	// consecutive route pair they were spliced into. Zero otherwise.
	SegmentIndex int
	// Outbound is true for the departure-side airport of an inserted pair.
	Outbound bool
}

// Default airport dwell times when no override is supplied.
const (
	OutboundAirportStayMinutes = 60
	InboundAirportStayMinutes  = 30
)

// TerminalNode builds a fixed endpoint node with zero stay time.
func TerminalNode(name string, location Coordinates) RouteNode {
	return RouteNode{Kind: NodeTerminal, Name: name, Location: location}
}

// PlaceNode wraps a selected place as a route stop.
func PlaceNode(p NormalizedPlace) RouteNode {
	return RouteNode{
		Kind:        NodePlace,
		Name:        p.Place.Name,
		Location:    p.Place.Location,
		StayMinutes: p.Place.StayMinutes,
		Place:       &p,
	}
}

// AirportNode wraps an inserted airport, tagged with the route segment it splits.
func AirportNode(a Airport, segmentIndex int, outbound bool) RouteNode {
	stay := InboundAirportStayMinutes
	if outbound {
		stay = OutboundAirportStayMinutes
	}
	return RouteNode{
		Kind:         NodeAirport,
		Name:         a.Name,
		Location:     a.Location,
		StayMinutes:  stay,
		Airport:      &a,
		SegmentIndex: segmentIndex,
		Outbound:     outbound,
	}
}
