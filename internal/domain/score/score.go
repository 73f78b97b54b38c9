// Package score defines the personalization score produced for one
// (business, preferences) pair.
package score

// Breakdown exposes each named sub-score individually for debugging/display.
type Breakdown struct {
	Interest     float64
	Subcategory  float64
	DealBreakers float64 // <= 0, subtracts from the total
	Distance     float64
	Rating       float64
	Freshness    float64
}

// Sum returns the total implied by the breakdown.
func (b Breakdown) Sum() float64 {
	return b.Interest + b.Subcategory + b.DealBreakers + b.Distance + b.Rating + b.Freshness
}

// Score is the computed personalization score. It is never mutated after
// construction and never persisted.
type Score struct {
	total     float64
	breakdown Breakdown
	insights  []string
}

// New creates a score from a breakdown and an ordered insight list.
// The total is always the breakdown sum; there are no hidden terms.
func New(breakdown Breakdown, insights []string) Score {
	return Score{
		total:     breakdown.Sum(),
		breakdown: breakdown,
		insights:  insights,
	}
}

// Total returns the summed score. May be negative when deal-breaker
// penalties dominate.
func (s Score) Total() float64 { return s.total }

// Breakdown returns the per-factor sub-scores.
func (s Score) Breakdown() Breakdown { return s.breakdown }

// Insights returns human-readable match notes in fixed evaluation order.
func (s Score) Insights() []string { return s.insights }
