package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Engine runs the four-stage optimization pipeline behind the result cache:
// Normalizer -> Selector -> Route Constructor -> Schedule Generator.
// Data flows strictly forward; no stage depends on a later one.
//
// Engine is safe for concurrent use. Concurrent identical requests trigger
// at most one computation (singleflight on the content-hash key).
type Engine struct {
	Repo     ports.TripRepository
	Inserter AirportInserter
	Cache    ports.ResultCache

	Hyper   Hyperparameters
	Weights FitnessWeights

	// NewRand supplies the random source for the genetic search. Defaults to
	// time seeding; tests inject a fixed seed for determinism.
	NewRand func() *rand.Rand

	group singleflight.Group
}

func NewEngine(repo ports.TripRepository, inserter AirportInserter, cache ports.ResultCache) *Engine {
	return &Engine{
		Repo:     repo,
		Inserter: inserter,
		Cache:    cache,
		Hyper:    DefaultHyperparameters(),
		Weights:  DefaultFitnessWeights(),
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

type OptimizeRequest struct {
	TripID   string
	MemberID string

	// Places may be empty, in which case they are loaded from the trip store.
	Places  []*domain.Place
	Members []*domain.Member

	Departure   domain.RouteNode
	Arrival     domain.RouteNode
	Constraints domain.TripConstraints
	Settings    domain.TripSettings
}

func (r *OptimizeRequest) validate() error {
	if strings.TrimSpace(r.TripID) == "" {
		return fmt.Errorf("optimize: %w: trip_id is required", domain.ErrInvalidInput)
	}
	if len(r.Members) == 0 {
		return fmt.Errorf("optimize: %w: members are required", domain.ErrInvalidInput)
	}
	if r.Departure.Location.IsZero() && r.Departure.Name == "" {
		return fmt.Errorf("optimize: %w: departure_point is required", domain.ErrInvalidInput)
	}
	if r.Arrival.Location.IsZero() && r.Arrival.Name == "" {
		return fmt.Errorf("optimize: %w: arrival_point is required", domain.ErrInvalidInput)
	}
	if err := r.Constraints.Validate(); err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	if err := r.Settings.Validate(); err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	return nil
}

// Optimize runs the full pipeline for one request, serving identical
// concurrent requests from a single computation and caching the result.
// The request either completes atomically or fails; partial results are
// never returned.
func (e *Engine) Optimize(ctx context.Context, req OptimizeRequest) (_ *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, "engine.Optimize")(&err)

	if err := req.validate(); err != nil {
		return nil, err
	}

	if len(req.Places) == 0 && e.Repo != nil {
		places, err := e.Repo.ListPlaces(ctx, req.TripID)
		if err != nil {
			return nil, fmt.Errorf("optimize: list places for trip %q: %w", req.TripID, err)
		}
		req.Places = places
	}

	key := ResultCacheKey(req)

	if e.Cache != nil {
		cached, ok, err := e.Cache.Get(ctx, key)
		if err != nil {
			// Cache loss never loses correctness, only speed.
			log.Printf("result cache read failed key=%s err=%v", key, err)
		} else if ok {
			return cached, nil
		}
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		result, err := e.compute(ctx, req)
		if err != nil {
			return nil, err
		}

		if e.Cache != nil {
			if err := e.Cache.Put(ctx, key, result); err != nil {
				log.Printf("result cache write failed key=%s err=%v", key, err)
			}
		}

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.OptimizationResult), nil
}

// compute executes the four stages in fixed order.
func (e *Engine) compute(ctx context.Context, req OptimizeRequest) (*domain.OptimizationResult, error) {
	normalized, err := NormalizePreferences(NormalizeRequest{
		TripID:   req.TripID,
		Places:   req.Places,
		Members:  req.Members,
		Settings: req.Settings,
	})
	if err != nil {
		return nil, fmt.Errorf("optimize: normalize: %w", err)
	}

	selection, err := SelectPlaces(SelectionRequest{
		Places:      normalized.Places,
		Members:     req.Members,
		Constraints: req.Constraints,
	}, e.Hyper, e.Weights, e.NewRand())
	if err != nil {
		return nil, fmt.Errorf("optimize: select: %w", err)
	}

	route := ConstructRoute(req.Departure, req.Arrival, selection.Selected)

	route, airportNotes, err := e.Inserter.Insert(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("optimize: insert airports: %w", err)
	}

	days := GenerateSchedule(route, req.Constraints)

	result := &domain.OptimizationResult{
		TripID:          req.TripID,
		Days:            days,
		FairnessScore:   selection.FairnessScore,
		EfficiencyScore: selection.EfficiencyScore,
		OptimizationScore: subsetFitness(selection.Selected, req.Constraints, e.Weights) /
			maxFitness(e.Weights),
		ComputedAt: time.Now().UTC(),
	}

	for _, d := range days {
		result.TotalTravelMinutes += d.TotalTravelMinutes
		result.TotalVisitMinutes += d.VisitMinutes
	}

	result.Rationale = append(result.Rationale, normalized.Rationale...)
	result.Rationale = append(result.Rationale, selection.Rationale...)
	result.Rationale = append(result.Rationale, airportNotes...)

	return result, nil
}

// maxFitness rescales the composite fitness onto 0..1 for reporting.
// Mean normalized weight tops out at the 2.0 weight clamp.
func maxFitness(w FitnessWeights) float64 {
	return w.Fairness + w.Efficiency + w.MeanWeight*domain.MaxNormalizedWeight + w.Diversity
}
