package services

import (
	"math"

	"trip-route-service/internal/domain"
)

// Weights of the composite fitness score used by the Selector.
// Heuristic values preserved from the original tuning; kept configurable
// rather than inferring "correct" ones.
type FitnessWeights struct {
	Fairness   float64
	Efficiency float64
	MeanWeight float64
	Diversity  float64
}

func DefaultFitnessWeights() FitnessWeights {
	return FitnessWeights{
		Fairness:   0.3,
		Efficiency: 0.25,
		MeanWeight: 0.25,
		Diversity:  0.2,
	}
}

// FairnessScore measures how evenly trip influence is distributed across
// members, 0..1. It averages two spread measures: per-member place counts
// and per-member summed normalized weights, each scored as 1 - stddev/mean
// and floored at 0.
func FairnessScore(places []domain.NormalizedPlace) float64 {
	if len(places) == 0 {
		return 1.0
	}

	counts := make(map[string]float64)
	weights := make(map[string]float64)
	for _, p := range places {
		counts[p.Place.MemberID]++
		weights[p.Place.MemberID] += p.NormalizedWeight
	}

	return (spreadScore(counts) + spreadScore(weights)) / 2
}

func spreadScore(byMember map[string]float64) float64 {
	if len(byMember) == 0 {
		return 1.0
	}

	var sum float64
	for _, v := range byMember {
		sum += v
	}
	mean := sum / float64(len(byMember))
	if mean == 0 {
		return 1.0
	}

	var variance float64
	for _, v := range byMember {
		d := v - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(byMember)))

	return math.Max(0, 1-stddev/mean)
}

// GeographicEfficiency rewards spatially compact selections:
// max(0, 1 - meanPairwiseKm/1000). O(n^2) over the subset.
func GeographicEfficiency(places []domain.NormalizedPlace) float64 {
	if len(places) < 2 {
		return 1.0
	}

	var total float64
	pairs := 0
	for i := 0; i < len(places); i++ {
		for j := i + 1; j < len(places); j++ {
			total += places[i].Place.Location.DistanceKm(places[j].Place.Location)
			pairs++
		}
	}

	return math.Max(0, 1-total/float64(pairs)/1000)
}

// CategoryDiversity scores category variety: min(1, distinct/10).
func CategoryDiversity(places []domain.NormalizedPlace) float64 {
	distinct := make(map[string]struct{})
	for _, p := range places {
		distinct[p.Place.Category] = struct{}{}
	}
	return math.Min(1, float64(len(distinct))/10)
}

func meanNormalizedWeight(places []domain.NormalizedPlace) float64 {
	if len(places) == 0 {
		return 0
	}
	var sum float64
	for _, p := range places {
		sum += p.NormalizedWeight
	}
	return sum / float64(len(places))
}

// subsetFitness scores a candidate selection. Subsets that exceed the size
// cap or miss the fairness threshold score zero (hard constraints).
func subsetFitness(subset []domain.NormalizedPlace, constraints domain.TripConstraints, w FitnessWeights) float64 {
	if len(subset) == 0 || len(subset) > constraints.MaxSelectable() {
		return 0
	}

	fairness := FairnessScore(subset)
	if fairness < constraints.FairnessThreshold {
		return 0
	}

	return fairness*w.Fairness +
		GeographicEfficiency(subset)*w.Efficiency +
		meanNormalizedWeight(subset)*w.MeanWeight +
		CategoryDiversity(subset)*w.Diversity
}
