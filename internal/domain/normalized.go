package domain

// A Place decorated with fairness-adjusted weights by the Preference
// Normalizer. Consumed by the Selector; never mutated afterward.
type NormalizedPlace struct {
	Place Place

	// NormalizedWeight is the final priority score, clamped to [0.1, 2.0].
	NormalizedWeight float64

	// FairnessFactor down-weights members who contributed many places and
	// up-weights members who contributed few. Clamped to [0.3, 1.5].
	FairnessFactor float64

	// RelativeImportance is the category-adjusted wish level on a 0..1 scale.
	RelativeImportance float64
}

// Weight bounds applied by the normalizer.
const (
	MinNormalizedWeight = 0.1
	MaxNormalizedWeight = 2.0
	MinFairnessFactor   = 0.3
	MaxFairnessFactor   = 1.5
)
