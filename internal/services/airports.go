package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// AirportInserter injects airport legs into a constructed route wherever
// direct ground travel is impractical.
//
// Lookups for independent long-haul segments are issued concurrently with a
// bounded worker count; results are slotted by segment index so the route
// order never depends on completion order.
type AirportInserter struct {
	// Directory is the external airport lookup. May be nil, in which case
	// Fallback serves every lookup.
	Directory ports.AirportDirectory
	// Fallback is the built-in static table used when Directory fails or
	// returns nothing.
	Fallback ports.AirportDirectory

	// LongHaulKm is the segment distance above which flying is considered.
	LongHaulKm float64
	// SearchRadiusKm bounds the airport search around each segment endpoint.
	SearchRadiusKm float64
	// LookupTimeout bounds each external directory call.
	LookupTimeout time.Duration
	// Concurrency bounds parallel segment lookups.
	Concurrency int
}

func NewAirportInserter(directory, fallback ports.AirportDirectory) AirportInserter {
	return AirportInserter{
		Directory:      directory,
		Fallback:       fallback,
		LongHaulKm:     300,
		SearchRadiusKm: 150,
		LookupTimeout:  5 * time.Second,
		Concurrency:    4,
	}
}

// A resolved insertion for one long-haul segment. ok=false keeps the
// direct ground route.
type segmentInsertion struct {
	segmentIndex int
	depart       domain.Airport
	arrive       domain.Airport
	ok           bool
	rationale    string
}

// Insert returns the route with airport pairs spliced into every long-haul
// segment that has a valid pair, plus rationale notes for absorbed
// directory failures. The route is never shortened: every input node
// appears in the output in its original order.
func (ai AirportInserter) Insert(ctx context.Context, route []domain.RouteNode) (_ []domain.RouteNode, _ []string, err error) {
	defer obs.Time(ctx, "airports.Insert")(&err)

	var segments []int
	for i := 0; i+1 < len(route); i++ {
		if route[i].Location.DistanceKm(route[i+1].Location) > ai.LongHaulKm {
			segments = append(segments, i)
		}
	}
	if len(segments) == 0 {
		return route, nil, nil
	}

	insertions := make([]segmentInsertion, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ai.Concurrency)
	for slot, segIdx := range segments {
		g.Go(func() error {
			ins, err := ai.resolveSegment(gctx, segIdx, route[segIdx].Location, route[segIdx+1].Location)
			if err != nil {
				return err
			}
			insertions[slot] = ins
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("insert airports: %w", err)
	}

	bySegment := make(map[int]segmentInsertion, len(insertions))
	var rationale []string
	for _, ins := range insertions {
		if ins.rationale != "" {
			rationale = append(rationale, ins.rationale)
		}
		if ins.ok {
			bySegment[ins.segmentIndex] = ins
		}
	}

	out := make([]domain.RouteNode, 0, len(route)+2*len(bySegment))
	for i, node := range route {
		out = append(out, node)
		if ins, ok := bySegment[i]; ok {
			out = append(out,
				domain.AirportNode(ins.depart, i, true),
				domain.AirportNode(ins.arrive, i, false),
			)
		}
	}

	return out, rationale, nil
}

// resolveSegment picks the best airport pair for one long-haul segment.
// Only context cancellation is a hard error; lookup failures degrade to the
// static table and a missing valid pair skips the insertion silently.
func (ai AirportInserter) resolveSegment(ctx context.Context, segmentIndex int, from, to domain.Coordinates) (segmentInsertion, error) {
	ins := segmentInsertion{segmentIndex: segmentIndex}

	origins, originNote, err := ai.lookup(ctx, from)
	if err != nil {
		return ins, err
	}
	destinations, destNote, err := ai.lookup(ctx, to)
	if err != nil {
		return ins, err
	}

	if originNote != "" {
		ins.rationale = originNote
	} else if destNote != "" {
		ins.rationale = destNote
	}

	// Prefer airport pairs that are far apart (worth flying) but close to
	// the original endpoints (low ground-transfer cost).
	bestScore := -1.0
	for _, dep := range origins {
		accessFrom := from.DistanceKm(dep.Location)
		for _, arr := range destinations {
			if dep.Code == arr.Code {
				continue
			}

			airDist := dep.Location.DistanceKm(arr.Location)
			accessTo := arr.Location.DistanceKm(to)
			if airDist <= accessFrom || airDist <= accessTo {
				continue
			}

			score := airDist / (1 + accessFrom + accessTo)
			if score > bestScore {
				bestScore = score
				ins.depart = dep
				ins.arrive = arr
				ins.ok = true
			}
		}
	}

	return ins, nil
}

// lookup queries the external directory with a bounded timeout, degrading
// to the static fallback table on error or empty result.
func (ai AirportInserter) lookup(ctx context.Context, center domain.Coordinates) ([]domain.Airport, string, error) {
	if ai.Directory != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, ai.LookupTimeout)
		airports, err := ai.Directory.Nearby(lookupCtx, center, ai.SearchRadiusKm)
		cancel()

		if err == nil && len(airports) > 0 {
			return airports, "", nil
		}
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}
		if err != nil {
			note := fmt.Sprintf("airport directory lookup failed near (%.2f, %.2f); using static table: %v",
				center.Lat, center.Lng, err)
			if ai.Fallback == nil {
				return nil, note, nil
			}
			airports, ferr := ai.Fallback.Nearby(ctx, center, ai.SearchRadiusKm)
			if ferr != nil {
				return nil, note, nil
			}
			return airports, note, nil
		}
	}

	if ai.Fallback == nil {
		return nil, "", nil
	}
	airports, err := ai.Fallback.Nearby(ctx, center, ai.SearchRadiusKm)
	if err != nil {
		return nil, "", nil
	}
	return airports, "", nil
}
