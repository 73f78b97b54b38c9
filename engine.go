// Package bizrank ranks business-directory listings against a user's stated
// interests, sub-interests, and deal-breakers. The engine is a pure function
// of its inputs: identical (business, preferences) pairs always produce an
// identical score, and every operation is safe for concurrent use.
//
// Callers fetch candidate businesses and the user's preference record from
// their own storage, then typically filter and rank:
//
//	engine, _ := bizrank.New()
//	visible := engine.FilterByDealBreakers(candidates, prefs.DealbreakerIDs)
//	ranked := engine.SortByPersonalization(visible, prefs)
//
// Filtering and the per-score deal-breaker penalty are independent: skip the
// filter to show borderline violators deprioritized instead of hidden.
package bizrank

import (
	"fmt"
	"sort"

	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/metrics"
	"github.com/locallens/bizrank/internal/usecase/personalize"
)

// Engine is the bizrank entry point.
type Engine struct {
	svc    *personalize.Service
	ranker personalize.Ranker
}

// New creates an engine, validating the weight table.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{weights: DefaultWeights()}
	for _, o := range opts {
		o(cfg)
	}

	svc, err := personalize.New(cfg.weights.toInternal())
	if err != nil {
		return nil, fmt.Errorf("bizrank: %w", err)
	}
	if cfg.clock != nil {
		svc.WithClock(cfg.clock)
	}
	for id, rule := range cfg.rules {
		svc.WithRule(id, wrapRule(rule))
	}

	var ranker personalize.Ranker = svc
	if cfg.logger != nil || cfg.metrics {
		if cfg.metrics {
			metrics.RegisterRankingMetrics()
		}
		ranker = personalize.NewInstrumentedRanker(svc, cfg.logger)
	}

	return &Engine{svc: svc, ranker: ranker}, nil
}

// Score computes the personalization score for one (business, preferences) pair.
func (e *Engine) Score(b Business, p Preferences) Score {
	ip := toInternalPrefs(p)
	return fromInternalScore(e.ranker.Score(toInternalBusiness(b, ip), ip))
}

// FilterByDealBreakers returns only businesses passing every recognized
// active deal-breaker rule, preserving input order. Unrecognized ids are
// inert; a rule that errors never rejects a business.
func (e *Engine) FilterByDealBreakers(businesses []Business, dealbreakerIDs []string) []Business {
	if len(dealbreakerIDs) == 0 {
		return businesses
	}

	empty := toInternalPrefs(Preferences{})
	out := make([]Business, 0, len(businesses))
	for _, b := range businesses {
		if e.svc.PassesDealBreakers(toInternalBusiness(b, empty), dealbreakerIDs) {
			out = append(out, b)
		}
	}
	return out
}

// SortByPersonalization returns the businesses reordered by descending
// personalization score. The sort is stable: equal scores keep their
// relative input order. The input slice is not modified.
func (e *Engine) SortByPersonalization(businesses []Business, p Preferences) []Business {
	if len(businesses) == 0 {
		return []Business{}
	}

	ip := toInternalPrefs(p)
	ranked := e.ranker.BoostPersonalMatches(e.toInternalList(businesses, ip), ip)

	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ranked[idx[a]].Score > ranked[idx[b]].Score
	})

	out := make([]Business, len(businesses))
	for i, j := range idx {
		out[i] = businesses[j]
	}
	return out
}

// BoostPersonalMatches annotates each business with its personalization
// score without reordering, for callers that rank by a composite key later.
func (e *Engine) BoostPersonalMatches(businesses []Business, p Preferences) []Ranked {
	ip := toInternalPrefs(p)
	ranked := e.ranker.BoostPersonalMatches(e.toInternalList(businesses, ip), ip)

	out := make([]Ranked, len(ranked))
	for i, r := range ranked {
		out[i] = Ranked{Business: businesses[i], PersonalizationScore: r.Score}
	}
	return out
}

func (e *Engine) toInternalList(businesses []Business, ip prefs.Preferences) []business.Business {
	out := make([]business.Business, len(businesses))
	for i, b := range businesses {
		out[i] = toInternalBusiness(b, ip)
	}
	return out
}

func wrapRule(rule Rule) personalize.Rule {
	return func(b business.Business) (bool, error) {
		return rule(fromInternalBusiness(b))
	}
}
