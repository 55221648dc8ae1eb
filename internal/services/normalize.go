package services

import (
	"fmt"
	"math"
	"slices"

	"trip-route-service/internal/domain"
)

// Category adjustments applied on top of the per-member wish baseline.
// Unlisted categories use defaultCategoryWeight.
var categoryWeights = map[string]float64{
	"must_visit": 1.3,
	"transport":  0.8,
}

const (
	defaultCategoryWeight = 1.0

	// Base weight clamp before rescaling to relative importance.
	minBaseNormalized = 0.1
	maxBaseNormalized = 3.0

	// Relative importance assigned when a member rated every place the same.
	// Keeps one uniformly-enthusiastic member from dominating.
	uniformWishImportance = 0.2
)

type NormalizeRequest struct {
	TripID   string
	Places   []*domain.Place
	Members  []*domain.Member
	Settings domain.TripSettings
}

// Per-member view of the normalization, in the shape the caller consumes.
type MemberNormalization struct {
	MemberID       string
	AvgWishLevel   float64
	FairnessFactor float64
	UniformWishes  bool
	Places         []domain.NormalizedPlace
}

type NormalizeResult struct {
	Members            []MemberNormalization
	Places             []domain.NormalizedPlace
	GroupFairnessScore float64
	Rationale          []string
}

// NormalizePreferences converts raw per-member wish levels into comparable,
// fairness-adjusted weights.
//
// Members who contributed many places are down-weighted and members who
// contributed few are up-weighted; this caps any single member's influence
// without fully equalizing it.
func NormalizePreferences(req NormalizeRequest) (*NormalizeResult, error) {
	if err := req.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("normalize preferences: %w", err)
	}

	// No places at all is a documented degenerate case, not an error.
	if len(req.Places) == 0 {
		return &NormalizeResult{
			Members:            []MemberNormalization{},
			Places:             []domain.NormalizedPlace{},
			GroupFairnessScore: 1.0,
			Rationale:          []string{"no places submitted; returning empty normalization"},
		}, nil
	}

	byMember := make(map[string][]*domain.Place)
	memberOrder := make([]string, 0, len(req.Members))
	for _, p := range req.Places {
		if _, ok := byMember[p.MemberID]; !ok {
			memberOrder = append(memberOrder, p.MemberID)
		}
		byMember[p.MemberID] = append(byMember[p.MemberID], p)
	}
	// Deterministic member processing order regardless of input ordering.
	slices.Sort(memberOrder)

	contributors := 0
	for _, m := range req.Members {
		if m.CanAddPlaces {
			contributors++
		}
	}
	if contributors == 0 {
		contributors = len(byMember)
	}
	idealPerMember := float64(len(req.Places)) / float64(contributors)

	activeMembers := len(byMember)

	out := &NormalizeResult{
		Members: make([]MemberNormalization, 0, activeMembers),
		Places:  make([]domain.NormalizedPlace, 0, len(req.Places)),
	}

	for _, memberID := range memberOrder {
		places := byMember[memberID]
		// Members with zero places were never keyed; no division by zero here.

		sum := 0
		uniform := true
		for _, p := range places {
			sum += p.WishLevel
			if p.WishLevel != places[0].WishLevel {
				uniform = false
			}
		}
		avg := float64(sum) / float64(len(places))

		fairness := 1.0
		if activeMembers > 1 {
			fairness = clamp(
				math.Sqrt(idealPerMember/float64(len(places))),
				domain.MinFairnessFactor, domain.MaxFairnessFactor,
			)
		}

		if uniform && len(places) > 1 {
			out.Rationale = append(out.Rationale,
				fmt.Sprintf("member %s rated all places identically; using fixed minimal importance", memberID))
		}

		mn := MemberNormalization{
			MemberID:       memberID,
			AvgWishLevel:   avg,
			FairnessFactor: fairness,
			UniformWishes:  uniform && len(places) > 1,
			Places:         make([]domain.NormalizedPlace, 0, len(places)),
		}

		for _, p := range places {
			importance := uniformWishImportance
			if !mn.UniformWishes {
				base := float64(p.WishLevel) / avg * categoryWeight(p.Category)
				base = clamp(base, minBaseNormalized, maxBaseNormalized)
				importance = base / maxBaseNormalized
			}

			multiplier := settingsMultiplier(req.Settings, fairness, importance)
			weight := clamp(importance*fairness*multiplier,
				domain.MinNormalizedWeight, domain.MaxNormalizedWeight)

			np := domain.NormalizedPlace{
				Place:              *p,
				NormalizedWeight:   weight,
				FairnessFactor:     fairness,
				RelativeImportance: importance,
			}
			mn.Places = append(mn.Places, np)
			out.Places = append(out.Places, np)
		}

		out.Members = append(out.Members, mn)
	}

	out.GroupFairnessScore = FairnessScore(out.Places)
	return out, nil
}

func categoryWeight(category string) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return defaultCategoryWeight
}

// settingsMultiplier blends fairness against efficiency per trip settings:
// a fairness-heavy trip leans on the fairness factor, an efficiency-heavy
// trip on raw importance, and a balanced trip averages the two.
func settingsMultiplier(s domain.TripSettings, fairness, importance float64) float64 {
	switch {
	case s.FairnessWeight > 0.6:
		return fairness
	case s.EfficiencyWeight > 0.6:
		return importance
	default:
		return (fairness + importance) / 2
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
