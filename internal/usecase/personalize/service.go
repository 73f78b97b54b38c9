// Package personalize ranks directory businesses against a user's stated
// interests, sub-interests, and deal-breakers.
package personalize

import (
	"math"
	"sort"
	"time"

	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/domain/score"
)

// Ranked pairs a business with its personalization score.
type Ranked struct {
	Business business.Business
	Score    float64
}

// Service computes personalization scores. It is a pure function of its
// inputs: no I/O, no shared mutable state, safe for concurrent use.
type Service struct {
	weights Weights
	rules   map[string]Rule
	now     func() time.Time
}

// New creates a scoring service after validating the weight table.
func New(weights Weights) (*Service, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		weights: weights,
		rules:   defaultRules(),
		now:     time.Now,
	}, nil
}

// WithRule overrides or registers a deal-breaker rule on this instance.
func (s *Service) WithRule(id string, rule Rule) *Service {
	s.rules[id] = rule
	return s
}

// WithClock overrides the freshness clock. Used in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Weights returns the active weight table.
func (s *Service) Weights() Weights { return s.weights }

// Score computes the personalization score for one (business, preferences)
// pair. Identical inputs always yield an identical score.
func (s *Service) Score(b business.Business, p prefs.Preferences) score.Score {
	breakdown := score.Breakdown{
		Interest:     s.interestScore(b, p),
		Subcategory:  s.subcategoryScore(b, p),
		DealBreakers: s.dealBreakerPenalty(b, p),
		Distance:     s.distanceScore(b, p),
		Rating:       s.ratingScore(b),
		Freshness:    s.freshnessScore(b),
	}
	return score.New(breakdown, s.insights(b, p))
}

// FilterByDealBreakers returns only businesses passing every recognized
// active rule, preserving input order. A rule that errors counts as a pass:
// a heuristic bug must never hide a legitimate listing.
func (s *Service) FilterByDealBreakers(
	businesses []business.Business, dealBreakerIDs []string,
) []business.Business {
	active := s.activeRules(dealBreakerIDs)
	if len(active) == 0 {
		return businesses
	}

	out := make([]business.Business, 0, len(businesses))
	for _, b := range businesses {
		if s.passesAll(b, active) {
			out = append(out, b)
		}
	}
	return out
}

// PassesDealBreakers reports whether one business passes every recognized
// active rule, with the same fail-open policy as FilterByDealBreakers.
func (s *Service) PassesDealBreakers(b business.Business, dealBreakerIDs []string) bool {
	return s.passesAll(b, s.activeRules(dealBreakerIDs))
}

// SortByPersonalization orders businesses by descending total score.
// The sort is stable: equal scores keep their relative input order.
func (s *Service) SortByPersonalization(
	businesses []business.Business, p prefs.Preferences,
) []business.Business {
	if len(businesses) == 0 {
		return []business.Business{}
	}

	ranked := s.BoostPersonalMatches(businesses, p)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	out := make([]business.Business, len(ranked))
	for i, r := range ranked {
		out[i] = r.Business
	}
	return out
}

// BoostPersonalMatches annotates each business with its total score without
// reordering, for callers that sort or filter later by a composite key.
func (s *Service) BoostPersonalMatches(
	businesses []business.Business, p prefs.Preferences,
) []Ranked {
	out := make([]Ranked, len(businesses))
	for i, b := range businesses {
		sc := s.Score(b, p)
		out[i] = Ranked{Business: b, Score: sc.Total()}
	}
	return out
}

func (s *Service) interestScore(b business.Business, p prefs.Preferences) float64 {
	if id, ok := b.InterestID(); ok && p.HasInterest(id) {
		return s.weights.InterestMatch
	}
	return 0
}

func (s *Service) subcategoryScore(b business.Business, p prefs.Preferences) float64 {
	if id, ok := b.SubInterestID(); ok && p.HasSubcategory(id) {
		return s.weights.SubcategoryMatch
	}
	return 0
}

// dealBreakerPenalty subtracts the penalty magnitude per failed active rule.
// Independent of FilterByDealBreakers so callers can deprioritize borderline
// violators instead of hiding them. Rule errors contribute no penalty.
func (s *Service) dealBreakerPenalty(b business.Business, p prefs.Preferences) float64 {
	var penalty float64
	for _, ar := range s.activeRules(p.DealBreakers()) {
		pass, err := safeEval(ar.rule, b)
		if err != nil {
			continue
		}
		if !pass {
			penalty -= s.weights.DealBreakerPenalty
		}
	}
	return penalty
}

// distanceScore requires both a user location and a known distance;
// otherwise it contributes 0. Bands are inclusive on the upper bound.
func (s *Service) distanceScore(b business.Business, p prefs.Preferences) float64 {
	if _, _, ok := p.Location(); !ok {
		return 0
	}
	km, ok := b.DistanceKm()
	if !ok {
		return 0
	}
	for _, band := range s.weights.DistanceBands {
		if km <= band.MaxKm {
			return band.Points
		}
	}
	return 0
}

// ratingScore scales the 0-5 rating and adds a diminishing-returns review
// bonus. The review count is floored at 1 before the log so zero reviews
// still yield a small non-zero floor instead of a cliff. The verified bonus
// requires an explicit true: absence earns nothing here, the opposite
// default from the trustworthiness rule.
func (s *Service) ratingScore(b business.Business) float64 {
	reviews := b.TotalReviews()
	if reviews < 1 {
		reviews = 1
	}

	sc := b.AverageRating()*s.weights.RatingMultiplier +
		math.Log(float64(reviews)+1)*s.weights.ReviewLogFactor

	if verified, ok := b.Verified(); ok && verified {
		sc += s.weights.VerifiedBonus
	}
	return sc
}

func (s *Service) freshnessScore(b business.Business) float64 {
	var sc float64

	if n := b.TotalReviews(); n > 0 {
		volume := float64(n) / s.weights.ReviewVolumeDivisor
		if volume > s.weights.ReviewVolumeCap {
			volume = s.weights.ReviewVolumeCap
		}
		sc += volume
	}

	if updated, ok := b.UpdatedAt(); ok {
		ageDays := s.now().Sub(updated).Hours() / 24
		for _, win := range s.weights.RecencyWindows {
			if ageDays <= float64(win.MaxAgeDays) {
				sc += win.Points
				break
			}
		}
	}
	return sc
}

// activeRule pairs a recognized deal-breaker id with its rule.
type activeRule struct {
	id   string
	rule Rule
}

// activeRules resolves ids against the registry in sorted id order, keeping
// scoring deterministic regardless of set iteration order. Unrecognized ids
// are inert.
func (s *Service) activeRules(ids []string) []activeRule {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	out := make([]activeRule, 0, len(sorted))
	for _, id := range sorted {
		if rule, ok := s.rules[id]; ok {
			out = append(out, activeRule{id: id, rule: rule})
		}
	}
	return out
}

func (s *Service) passesAll(b business.Business, active []activeRule) bool {
	for _, ar := range active {
		pass, err := safeEval(ar.rule, b)
		if err != nil {
			// Fail open.
			continue
		}
		if !pass {
			return false
		}
	}
	return true
}
