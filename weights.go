package bizrank

import "github.com/locallens/bizrank/internal/usecase/personalize"

// DistanceBand maps an inclusive upper distance bound (km) to points.
type DistanceBand struct {
	MaxKm  float64
	Points float64
}

// RecencyWindow maps an inclusive maximum age in days to points.
type RecencyWindow struct {
	MaxAgeDays int
	Points     float64
}

// Weights holds the tunable constants of the scoring model. The subcategory
// weight must exceed the interest weight; New rejects tables that invert it.
type Weights struct {
	InterestMatch      float64
	SubcategoryMatch   float64
	DealBreakerPenalty float64
	DistanceBands      []DistanceBand
	RatingMultiplier   float64
	ReviewLogFactor    float64
	VerifiedBonus      float64

	ReviewVolumeDivisor float64
	ReviewVolumeCap     float64
	RecencyWindows      []RecencyWindow

	HighRatingInsightMin   float64
	FriendlinessInsightMin float64
	PunctualityInsightMin  float64
}

// DefaultWeights returns the production scoring model.
func DefaultWeights() Weights {
	return fromInternalWeights(personalize.DefaultWeights())
}

func (w Weights) toInternal() personalize.Weights {
	out := personalize.Weights{
		InterestMatch:          w.InterestMatch,
		SubcategoryMatch:       w.SubcategoryMatch,
		DealBreakerPenalty:     w.DealBreakerPenalty,
		RatingMultiplier:       w.RatingMultiplier,
		ReviewLogFactor:        w.ReviewLogFactor,
		VerifiedBonus:          w.VerifiedBonus,
		ReviewVolumeDivisor:    w.ReviewVolumeDivisor,
		ReviewVolumeCap:        w.ReviewVolumeCap,
		HighRatingInsightMin:   w.HighRatingInsightMin,
		FriendlinessInsightMin: w.FriendlinessInsightMin,
		PunctualityInsightMin:  w.PunctualityInsightMin,
	}
	for _, b := range w.DistanceBands {
		out.DistanceBands = append(out.DistanceBands, personalize.DistanceBand(b))
	}
	for _, win := range w.RecencyWindows {
		out.RecencyWindows = append(out.RecencyWindows, personalize.RecencyWindow(win))
	}
	return out
}

func fromInternalWeights(w personalize.Weights) Weights {
	out := Weights{
		InterestMatch:          w.InterestMatch,
		SubcategoryMatch:       w.SubcategoryMatch,
		DealBreakerPenalty:     w.DealBreakerPenalty,
		RatingMultiplier:       w.RatingMultiplier,
		ReviewLogFactor:        w.ReviewLogFactor,
		VerifiedBonus:          w.VerifiedBonus,
		ReviewVolumeDivisor:    w.ReviewVolumeDivisor,
		ReviewVolumeCap:        w.ReviewVolumeCap,
		HighRatingInsightMin:   w.HighRatingInsightMin,
		FriendlinessInsightMin: w.FriendlinessInsightMin,
		PunctualityInsightMin:  w.PunctualityInsightMin,
	}
	for _, b := range w.DistanceBands {
		out.DistanceBands = append(out.DistanceBands, DistanceBand(b))
	}
	for _, win := range w.RecencyWindows {
		out.RecencyWindows = append(out.RecencyWindows, RecencyWindow(win))
	}
	return out
}
