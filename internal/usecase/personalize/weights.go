package personalize

import (
	"fmt"

	"github.com/locallens/bizrank/internal/domain"
)

// DistanceBand maps an inclusive upper distance bound to a score contribution.
// Bands are evaluated in ascending order; first match wins.
type DistanceBand struct {
	MaxKm  float64
	Points float64
}

// RecencyWindow maps an inclusive maximum age in days to a score contribution.
type RecencyWindow struct {
	MaxAgeDays int
	Points     float64
}

// Weights holds every tunable constant of the scoring model.
type Weights struct {
	// Categorical matching. Subcategory must outweigh interest: the more
	// specific signal wins ties between a broad and an exact match.
	InterestMatch    float64
	SubcategoryMatch float64

	// Magnitude subtracted from the total per failed active deal-breaker.
	DealBreakerPenalty float64

	// Stepped distance decay. Anything beyond the last band scores 0.
	DistanceBands []DistanceBand

	// Rating: average*RatingMultiplier + ln(max(reviews,1)+1)*ReviewLogFactor
	// + VerifiedBonus when verified is explicitly true.
	RatingMultiplier float64
	ReviewLogFactor  float64
	VerifiedBonus    float64

	// Freshness: min(reviews/ReviewVolumeDivisor, ReviewVolumeCap) plus the
	// first recency window covering the age of updatedAt.
	ReviewVolumeDivisor float64
	ReviewVolumeCap     float64
	RecencyWindows      []RecencyWindow

	// Insight thresholds.
	HighRatingInsightMin   float64
	FriendlinessInsightMin float64
	PunctualityInsightMin  float64
}

// DefaultWeights returns the production scoring model.
func DefaultWeights() Weights {
	return Weights{
		InterestMatch:      15,
		SubcategoryMatch:   25,
		DealBreakerPenalty: 50,
		DistanceBands: []DistanceBand{
			{MaxKm: 1, Points: 10},
			{MaxKm: 5, Points: 8},
			{MaxKm: 10, Points: 5},
			{MaxKm: 20, Points: 2},
		},
		RatingMultiplier:    3,
		ReviewLogFactor:     0.5,
		VerifiedBonus:       2,
		ReviewVolumeDivisor: 10,
		ReviewVolumeCap:     3,
		RecencyWindows: []RecencyWindow{
			{MaxAgeDays: 7, Points: 2},
			{MaxAgeDays: 30, Points: 1},
			{MaxAgeDays: 90, Points: 0.5},
		},
		HighRatingInsightMin:   4.5,
		FriendlinessInsightMin: 80,
		PunctualityInsightMin:  80,
	}
}

// Validate checks the weight table against the model's design invariants.
func (w Weights) Validate() error {
	if w.InterestMatch < 0 || w.SubcategoryMatch < 0 {
		return fmt.Errorf("%w: match weights must be non-negative", domain.ErrInvalidWeights)
	}
	if w.SubcategoryMatch <= w.InterestMatch {
		return fmt.Errorf(
			"%w: subcategory weight (%g) must exceed interest weight (%g)",
			domain.ErrInvalidWeights, w.SubcategoryMatch, w.InterestMatch,
		)
	}
	if w.DealBreakerPenalty < 0 {
		return fmt.Errorf("%w: deal-breaker penalty must be a non-negative magnitude", domain.ErrInvalidWeights)
	}
	for i, band := range w.DistanceBands {
		if band.MaxKm <= 0 || band.Points < 0 {
			return fmt.Errorf("%w: distance band %d out of range", domain.ErrInvalidWeights, i)
		}
		if i > 0 && band.MaxKm <= w.DistanceBands[i-1].MaxKm {
			return fmt.Errorf("%w: distance bands must be strictly ascending", domain.ErrInvalidWeights)
		}
	}
	if w.ReviewVolumeDivisor <= 0 {
		return fmt.Errorf("%w: review volume divisor must be positive", domain.ErrInvalidWeights)
	}
	for i, win := range w.RecencyWindows {
		if win.MaxAgeDays <= 0 || win.Points < 0 {
			return fmt.Errorf("%w: recency window %d out of range", domain.ErrInvalidWeights, i)
		}
		if i > 0 && win.MaxAgeDays <= w.RecencyWindows[i-1].MaxAgeDays {
			return fmt.Errorf("%w: recency windows must be strictly ascending", domain.ErrInvalidWeights)
		}
	}
	return nil
}
