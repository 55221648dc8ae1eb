package services

import (
	"fmt"
	"math/rand"

	"trip-route-service/internal/domain"
)

type SelectionRequest struct {
	Places      []domain.NormalizedPlace
	Members     []*domain.Member
	Constraints domain.TripConstraints
}

type SelectionResult struct {
	Selected        []domain.NormalizedPlace
	FairnessScore   float64
	EfficiencyScore float64
	// MemberDistribution maps member ID to how many of their places were kept.
	MemberDistribution map[string]int
	// Strategy is "genetic" or "greedy".
	Strategy  string
	Rationale []string
}

// SelectPlaces chooses a feasible subset of places maximizing the composite
// fitness score under count and fairness constraints.
//
// The genetic search is the primary strategy. Selection degrades to greedy —
// never fails — when the pool already fits the cap, the search exceeds its
// time budget, or the constraints prove infeasible at the requested size.
func SelectPlaces(req SelectionRequest, hp Hyperparameters, weights FitnessWeights, rng *rand.Rand) (*SelectionResult, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, fmt.Errorf("select places: %w", err)
	}

	if len(req.Places) == 0 {
		return &SelectionResult{
			Selected:           []domain.NormalizedPlace{},
			FairnessScore:      1.0,
			EfficiencyScore:    1.0,
			MemberDistribution: map[string]int{},
			Strategy:           "greedy",
			Rationale:          []string{"no candidate places; nothing to select"},
		}, nil
	}

	var (
		selected  []domain.NormalizedPlace
		strategy  string
		rationale []string
	)

	if len(req.Places) <= req.Constraints.MaxSelectable() {
		// Small trip: the whole pool fits the cap, evolution cannot improve
		// on taking everything that passes the fairness check.
		selected = greedySelect(req.Places, req.Constraints)
		strategy = "greedy"
	} else {
		var err error
		selected, err = geneticSelect(req.Places, req.Constraints, hp, weights, rng)
		strategy = "genetic"
		if err != nil {
			selected = greedySelect(req.Places, req.Constraints)
			strategy = "greedy"
			rationale = append(rationale,
				fmt.Sprintf("genetic selection degraded to greedy (best effort): %v", err))
		}
	}

	fairness := FairnessScore(selected)
	if fairness < req.Constraints.FairnessThreshold {
		rationale = append(rationale,
			fmt.Sprintf("fairness %.3f below threshold %.3f; greedy result is best effort",
				fairness, req.Constraints.FairnessThreshold))
	}

	distribution := make(map[string]int)
	for _, p := range selected {
		distribution[p.Place.MemberID]++
	}

	return &SelectionResult{
		Selected:           selected,
		FairnessScore:      fairness,
		EfficiencyScore:    GeographicEfficiency(selected),
		MemberDistribution: distribution,
		Strategy:           strategy,
		Rationale:          rationale,
	}, nil
}
