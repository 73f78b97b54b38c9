package bizrank

import "time"

// Business is a candidate listing to score. Every field except ID is
// optional; pointer fields distinguish "not set" from an explicit value.
type Business struct {
	ID            string             `json:"id"`
	InterestID    string             `json:"interestId,omitempty"`
	SubInterestID string             `json:"subInterestId,omitempty"`
	PriceRange    string             `json:"priceRange,omitempty"` // "$".."$$$$", empty = unknown
	AverageRating float64            `json:"averageRating,omitempty"`
	TotalReviews  int                `json:"totalReviews,omitempty"`
	DistanceKm    *float64           `json:"distanceKm,omitempty"`
	Percentiles   map[string]float64 `json:"percentiles,omitempty"`
	Verified      *bool              `json:"verified,omitempty"`
	Latitude      *float64           `json:"latitude,omitempty"`
	Longitude     *float64           `json:"longitude,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitzero"`
}

// Preferences is a user's stated taste: liked categories, liked
// sub-categories, enforced deal-breakers, and an optional location.
type Preferences struct {
	InterestIDs    []string `json:"interestIds,omitempty"`
	SubcategoryIDs []string `json:"subcategoryIds,omitempty"`
	DealbreakerIDs []string `json:"dealbreakerIds,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// Breakdown exposes each sub-score of a personalization score.
type Breakdown struct {
	Interest     float64 `json:"interest"`
	Subcategory  float64 `json:"subcategory"`
	DealBreakers float64 `json:"dealBreakers"`
	Distance     float64 `json:"distance"`
	Rating       float64 `json:"rating"`
	Freshness    float64 `json:"freshness"`
}

// Score is the personalization score for one (business, preferences) pair.
type Score struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
	Insights  []string  `json:"insights,omitempty"`
}

// Ranked pairs a business with its personalization score, preserving the
// caller's ordering.
type Ranked struct {
	Business             Business `json:"business"`
	PersonalizationScore float64  `json:"personalizationScore"`
}

// Rule decides whether a business passes a custom deal-breaker check.
type Rule func(Business) (bool, error)

// Quality dimension names accepted in Business.Percentiles.
const (
	DimensionPunctuality       = "punctuality"
	DimensionFriendliness      = "friendliness"
	DimensionTrustworthiness   = "trustworthiness"
	DimensionCostEffectiveness = "cost-effectiveness"
)
