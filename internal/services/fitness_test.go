package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-route-service/internal/domain"
)

func normalized(t *testing.T, id, memberID string, weight, lat, lng float64, category string) domain.NormalizedPlace {
	t.Helper()
	p := mustPlace(t, id, memberID, 3, lat, lng, category)
	return domain.NormalizedPlace{
		Place:              *p,
		NormalizedWeight:   weight,
		FairnessFactor:     1.0,
		RelativeImportance: 0.5,
	}
}

func TestFairnessScore(t *testing.T) {
	t.Run("empty set is perfectly fair", func(t *testing.T) {
		assert.Equal(t, 1.0, FairnessScore(nil))
	})

	t.Run("single member is perfectly fair", func(t *testing.T) {
		places := []domain.NormalizedPlace{
			normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "a"),
			normalized(t, "p2", "m1", 1.5, 35.1, 139.1, "b"),
		}
		assert.Equal(t, 1.0, FairnessScore(places))
	})

	t.Run("even split scores higher than a skewed one", func(t *testing.T) {
		even := []domain.NormalizedPlace{
			normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "a"),
			normalized(t, "p2", "m2", 1.0, 35.1, 139.1, "a"),
		}
		skewed := []domain.NormalizedPlace{
			normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "a"),
			normalized(t, "p2", "m1", 1.0, 35.1, 139.1, "a"),
			normalized(t, "p3", "m1", 1.0, 35.2, 139.2, "a"),
			normalized(t, "p4", "m2", 1.0, 35.3, 139.3, "a"),
		}
		assert.Greater(t, FairnessScore(even), FairnessScore(skewed))
	})
}

func TestGeographicEfficiency(t *testing.T) {
	compact := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.68, 139.76, "a"),
		normalized(t, "p2", "m1", 1.0, 35.69, 139.77, "a"),
		normalized(t, "p3", "m1", 1.0, 35.70, 139.75, "a"),
	}
	spread := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.68, 139.76, "a"), // Tokyo
		normalized(t, "p2", "m1", 1.0, 43.06, 141.35, "a"), // Sapporo
		normalized(t, "p3", "m1", 1.0, 26.21, 127.68, "a"), // Naha
	}

	assert.Greater(t, GeographicEfficiency(compact), GeographicEfficiency(spread))
	assert.Equal(t, 1.0, GeographicEfficiency(compact[:1]), "single place is maximally compact")
	assert.GreaterOrEqual(t, GeographicEfficiency(spread), 0.0)
}

func TestCategoryDiversity(t *testing.T) {
	same := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "sightseeing"),
		normalized(t, "p2", "m1", 1.0, 35.1, 139.1, "sightseeing"),
	}
	varied := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "sightseeing"),
		normalized(t, "p2", "m1", 1.0, 35.1, 139.1, "restaurant"),
		normalized(t, "p3", "m1", 1.0, 35.2, 139.2, "museum"),
	}

	assert.Equal(t, 0.1, CategoryDiversity(same))
	assert.InDelta(t, 0.3, CategoryDiversity(varied), 1e-9)
}

func TestSubsetFitnessHardConstraints(t *testing.T) {
	constraints := domain.TripConstraints{DurationDays: 1, MaxPlacesPerDay: 2, FairnessThreshold: 0.9}
	weights := DefaultFitnessWeights()

	oversized := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "a"),
		normalized(t, "p2", "m1", 1.0, 35.1, 139.1, "a"),
		normalized(t, "p3", "m1", 1.0, 35.2, 139.2, "a"),
	}
	assert.Equal(t, 0.0, subsetFitness(oversized, constraints, weights), "size cap is a hard constraint")

	unfair := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 2.0, 35.0, 139.0, "a"),
		normalized(t, "p2", "m2", 0.1, 35.1, 139.1, "a"),
	}
	assert.Equal(t, 0.0, subsetFitness(unfair, constraints, weights), "fairness threshold is a hard constraint")

	fair := []domain.NormalizedPlace{
		normalized(t, "p1", "m1", 1.0, 35.0, 139.0, "a"),
		normalized(t, "p2", "m2", 1.0, 35.1, 139.1, "b"),
	}
	assert.Greater(t, subsetFitness(fair, constraints, weights), 0.0)
}
