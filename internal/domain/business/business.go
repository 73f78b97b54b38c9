// Package business defines the read-only business record consumed by scoring.
package business

import (
	"time"

	"github.com/locallens/bizrank/internal/domain/geo"
	"github.com/locallens/bizrank/internal/domain/price"
)

// Dimension is a named quality dimension backed by review percentiles.
type Dimension string

// Quality dimension constants.
const (
	Punctuality       Dimension = "punctuality"
	Friendliness      Dimension = "friendliness"
	Trustworthiness   Dimension = "trustworthiness"
	CostEffectiveness Dimension = "cost-effectiveness"
)

// IsValid checks if the dimension is one of the supported values.
func (d Dimension) IsValid() bool {
	return d == Punctuality || d == Friendliness || d == Trustworthiness || d == CostEffectiveness
}

// Business is an immutable candidate listing. Every attribute except the id is
// optional; absent attributes are reported through the ok return of their
// accessor and scored with the documented defaults.
type Business struct {
	id            string
	interestID    string
	subInterestID string
	priceRange    price.Range
	averageRating float64
	totalReviews  int
	distanceKm    float64
	hasDistance   bool
	percentiles   map[Dimension]float64
	verified      bool
	verifiedSet   bool
	lat, lng      float64
	hasCoords     bool
	updatedAt     time.Time
}

// Option configures an optional business attribute.
type Option func(*Business)

// WithInterest sets the broad interest category tag.
func WithInterest(id string) Option {
	return func(b *Business) { b.interestID = id }
}

// WithSubInterest sets the more specific sub-category tag.
func WithSubInterest(id string) Option {
	return func(b *Business) { b.subInterestID = id }
}

// WithPriceRange sets the price tier. Invalid tiers are ignored (treated as unknown).
func WithPriceRange(r price.Range) Option {
	return func(b *Business) {
		if r.IsValid() {
			b.priceRange = r
		}
	}
}

// WithRating sets the average rating (nominal 0-5) and backing review count.
func WithRating(average float64, totalReviews int) Option {
	return func(b *Business) {
		b.averageRating = average
		if totalReviews > 0 {
			b.totalReviews = totalReviews
		}
	}
}

// WithDistanceKm sets the precomputed straight-line distance from the user.
func WithDistanceKm(km float64) Option {
	return func(b *Business) {
		if km >= 0 {
			b.distanceKm = km
			b.hasDistance = true
		}
	}
}

// WithPercentile records one quality-dimension percentile (clamped to [0,100]).
func WithPercentile(dim Dimension, value float64) Option {
	return func(b *Business) {
		if !dim.IsValid() {
			return
		}
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		if b.percentiles == nil {
			b.percentiles = make(map[Dimension]float64, 4)
		}
		b.percentiles[dim] = value
	}
}

// WithPercentiles records a batch of quality-dimension percentiles.
func WithPercentiles(values map[Dimension]float64) Option {
	return func(b *Business) {
		for dim, v := range values {
			WithPercentile(dim, v)(b)
		}
	}
}

// WithVerified sets the explicit verification flag.
func WithVerified(v bool) Option {
	return func(b *Business) {
		b.verified = v
		b.verifiedSet = true
	}
}

// WithCoordinates sets the business location. Out-of-range coordinates are ignored.
func WithCoordinates(lat, lng float64) Option {
	return func(b *Business) {
		if !geo.ValidateCoordinates(lat, lng) {
			return
		}
		b.lat = lat
		b.lng = lng
		b.hasCoords = true
	}
}

// WithUpdatedAt sets the last-update timestamp used by freshness scoring.
func WithUpdatedAt(ts time.Time) Option {
	return func(b *Business) { b.updatedAt = ts }
}

// New creates a business record.
func New(id string, opts ...Option) Business {
	b := Business{id: id}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// ID returns the opaque identifier (used only for caller-side correlation).
func (b *Business) ID() string { return b.id }

// InterestID returns the broad category tag, if present.
func (b *Business) InterestID() (string, bool) {
	return b.interestID, b.interestID != ""
}

// SubInterestID returns the sub-category tag, if present.
func (b *Business) SubInterestID() (string, bool) {
	return b.subInterestID, b.subInterestID != ""
}

// PriceRange returns the price tier, if known.
func (b *Business) PriceRange() (price.Range, bool) {
	return b.priceRange, b.priceRange.IsValid()
}

// AverageRating returns the rating; zero means "no rating".
func (b *Business) AverageRating() float64 { return b.averageRating }

// TotalReviews returns the review count backing the rating.
func (b *Business) TotalReviews() int { return b.totalReviews }

// DistanceKm returns the user-to-business distance, if known.
func (b *Business) DistanceKm() (float64, bool) {
	return b.distanceKm, b.hasDistance
}

// Percentile returns the stored percentile for dim, or fallback when absent.
func (b *Business) Percentile(dim Dimension, fallback float64) float64 {
	if v, ok := b.percentiles[dim]; ok {
		return v
	}
	return fallback
}

// HasPercentile reports whether a percentile is recorded for dim.
func (b *Business) HasPercentile(dim Dimension) bool {
	_, ok := b.percentiles[dim]
	return ok
}

// Verified returns the verification flag and whether it was explicitly set.
func (b *Business) Verified() (verified, ok bool) {
	return b.verified, b.verifiedSet
}

// Coordinates returns the business location, if known.
func (b *Business) Coordinates() (lat, lng float64, ok bool) {
	return b.lat, b.lng, b.hasCoords
}

// UpdatedAt returns the last-update timestamp, if present.
func (b *Business) UpdatedAt() (time.Time, bool) {
	return b.updatedAt, !b.updatedAt.IsZero()
}

// WithDerivedDistance returns a copy with distanceKm set, leaving the receiver
// untouched. Used by callers that compute distance from coordinates; an
// explicitly provided distance is never overwritten.
func (b Business) WithDerivedDistance(km float64) Business {
	if b.hasDistance || km < 0 {
		return b
	}
	b.distanceKm = km
	b.hasDistance = true
	return b
}
