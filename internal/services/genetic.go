package services

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"trip-route-service/internal/domain"
)

// GA hyperparameters. Heuristic values preserved from the original tuning.
type Hyperparameters struct {
	PopulationMin  int
	PopulationMax  int
	Generations    int
	EliteFraction  float64
	TournamentSize int
	MutationRate   float64
	// TargetFill is the fraction of the size cap initial individuals aim for.
	TargetFill float64
	// TimeBudget bounds the evolutionary loop; on overrun the caller falls
	// back to greedy selection.
	TimeBudget time.Duration
}

func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		PopulationMin:  20,
		PopulationMax:  100,
		Generations:    50,
		EliteFraction:  0.2,
		TournamentSize: 3,
		MutationRate:   0.1,
		TargetFill:     0.7,
		TimeBudget:     2 * time.Second,
	}
}

var errSelectionInfeasible = errors.New("no candidate subset satisfies the hard constraints")

// An individual is a sorted set of indices into the candidate place slice.
type individual []int

// geneticSelect runs the bounded genetic search and returns the best subset
// of the final generation. Errors signal that the caller should degrade to
// the greedy strategy (time budget exceeded, constraints infeasible).
func geneticSelect(
	places []domain.NormalizedPlace,
	constraints domain.TripConstraints,
	hp Hyperparameters,
	weights FitnessWeights,
	rng *rand.Rand,
) ([]domain.NormalizedPlace, error) {
	if len(places) == 0 {
		return []domain.NormalizedPlace{}, nil
	}

	maxCount := constraints.MaxSelectable()
	target := int(float64(maxCount)*hp.TargetFill + 0.5)
	if target < 1 {
		target = 1
	}
	if target > len(places) {
		target = len(places)
	}

	popSize := len(places)
	if popSize < hp.PopulationMin {
		popSize = hp.PopulationMin
	}
	if popSize > hp.PopulationMax {
		popSize = hp.PopulationMax
	}

	byMember := indicesByMember(places)

	population := make([]individual, popSize)
	for i := range population {
		population[i] = seedIndividual(byMember, len(places), target, rng)
	}

	deadline := time.Now().Add(hp.TimeBudget)
	elites := int(float64(popSize) * hp.EliteFraction)
	if elites < 1 {
		elites = 1
	}

	score := func(ind individual) float64 {
		return subsetFitness(materialize(places, ind), constraints, weights)
	}

	for gen := 0; gen < hp.Generations; gen++ {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("genetic select: time budget exceeded at generation %d", gen)
		}

		fitnesses := make([]float64, len(population))
		for i, ind := range population {
			fitnesses[i] = score(ind)
		}
		sortByFitness(population, fitnesses)

		next := make([]individual, 0, popSize)
		// Elitism: carry the top individuals over unchanged.
		next = append(next, population[:elites]...)

		for len(next) < popSize {
			a := population[tournament(fitnesses, hp.TournamentSize, rng)]
			b := population[tournament(fitnesses, hp.TournamentSize, rng)]
			child := crossover(a, b, maxCount, rng)
			if rng.Float64() < hp.MutationRate {
				child = mutate(child, len(places), rng)
			}
			next = append(next, child)
		}

		population = next
	}

	bestIdx := 0
	bestFit := score(population[0])
	for i := 1; i < len(population); i++ {
		if f := score(population[i]); f > bestFit {
			bestFit = f
			bestIdx = i
		}
	}

	if bestFit == 0 {
		return nil, fmt.Errorf("genetic select: %w", errSelectionInfeasible)
	}

	return materialize(places, population[bestIdx]), nil
}

func indicesByMember(places []domain.NormalizedPlace) map[string][]int {
	byMember := make(map[string][]int)
	for i, p := range places {
		byMember[p.Place.MemberID] = append(byMember[p.Place.MemberID], i)
	}
	return byMember
}

// seedIndividual guarantees at least one place per member (where available)
// before filling randomly up to the target size.
func seedIndividual(byMember map[string][]int, total, target int, rng *rand.Rand) individual {
	chosen := make(map[int]struct{})

	memberIDs := make([]string, 0, len(byMember))
	for id := range byMember {
		memberIDs = append(memberIDs, id)
	}
	slices.Sort(memberIDs)

	for _, id := range memberIDs {
		if len(chosen) >= target {
			break
		}
		idxs := byMember[id]
		chosen[idxs[rng.Intn(len(idxs))]] = struct{}{}
	}

	for len(chosen) < target {
		chosen[rng.Intn(total)] = struct{}{}
	}

	return toIndividual(chosen)
}

// crossover splices a single-point cut of both parents, deduplicating and
// truncating to the size cap.
func crossover(a, b individual, maxCount int, rng *rand.Rand) individual {
	if len(a) == 0 {
		return slices.Clone(b)
	}
	if len(b) == 0 {
		return slices.Clone(a)
	}

	point := rng.Intn(len(a))
	merged := make(map[int]struct{}, len(a)+len(b))
	for _, idx := range a[:point] {
		merged[idx] = struct{}{}
	}
	for _, idx := range b[point*len(b)/len(a):] {
		merged[idx] = struct{}{}
	}

	child := toIndividual(merged)
	if len(child) > maxCount {
		child = child[:maxCount]
	}
	return child
}

// mutate drops or adds a single place.
func mutate(ind individual, total int, rng *rand.Rand) individual {
	set := make(map[int]struct{}, len(ind))
	for _, idx := range ind {
		set[idx] = struct{}{}
	}

	if rng.Float64() < 0.5 && len(ind) > 1 {
		delete(set, ind[rng.Intn(len(ind))])
	} else if len(ind) < total {
		for {
			candidate := rng.Intn(total)
			if _, ok := set[candidate]; !ok {
				set[candidate] = struct{}{}
				break
			}
		}
	}

	return toIndividual(set)
}

// tournament returns the index of the fittest among k random entrants.
func tournament(fitnesses []float64, k int, rng *rand.Rand) int {
	best := rng.Intn(len(fitnesses))
	for i := 1; i < k; i++ {
		challenger := rng.Intn(len(fitnesses))
		if fitnesses[challenger] > fitnesses[best] {
			best = challenger
		}
	}
	return best
}

func sortByFitness(population []individual, fitnesses []float64) {
	order := make([]int, len(population))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		if fitnesses[i] > fitnesses[j] {
			return -1
		}
		if fitnesses[i] < fitnesses[j] {
			return 1
		}
		return 0
	})

	sortedPop := make([]individual, len(population))
	sortedFit := make([]float64, len(fitnesses))
	for rank, idx := range order {
		sortedPop[rank] = population[idx]
		sortedFit[rank] = fitnesses[idx]
	}
	copy(population, sortedPop)
	copy(fitnesses, sortedFit)
}

func toIndividual(set map[int]struct{}) individual {
	out := make(individual, 0, len(set))
	for idx := range set {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

func materialize(places []domain.NormalizedPlace, ind individual) []domain.NormalizedPlace {
	subset := make([]domain.NormalizedPlace, 0, len(ind))
	for _, idx := range ind {
		subset = append(subset, places[idx])
	}
	return subset
}
