package bizrank

import (
	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/geo"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/domain/price"
	"github.com/locallens/bizrank/internal/domain/score"
)

// toInternalBusiness converts a public record, deriving the distance from
// coordinates when the caller supplied none and a user location is known.
// An explicit DistanceKm always wins over the derived value.
func toInternalBusiness(b Business, p prefs.Preferences) business.Business {
	opts := []business.Option{
		business.WithInterest(b.InterestID),
		business.WithSubInterest(b.SubInterestID),
	}
	if r, ok := price.Parse(b.PriceRange); ok {
		opts = append(opts, business.WithPriceRange(r))
	}
	if b.AverageRating != 0 || b.TotalReviews != 0 {
		opts = append(opts, business.WithRating(b.AverageRating, b.TotalReviews))
	}
	if b.DistanceKm != nil {
		opts = append(opts, business.WithDistanceKm(*b.DistanceKm))
	}
	for dim, v := range b.Percentiles {
		opts = append(opts, business.WithPercentile(business.Dimension(dim), v))
	}
	if b.Verified != nil {
		opts = append(opts, business.WithVerified(*b.Verified))
	}
	if b.Latitude != nil && b.Longitude != nil {
		opts = append(opts, business.WithCoordinates(*b.Latitude, *b.Longitude))
	}
	if !b.UpdatedAt.IsZero() {
		opts = append(opts, business.WithUpdatedAt(b.UpdatedAt))
	}

	ib := business.New(b.ID, opts...)

	if userLat, userLng, ok := p.Location(); ok {
		if lat, lng, haveCoords := ib.Coordinates(); haveCoords {
			ib = ib.WithDerivedDistance(geo.HaversineKm(userLat, userLng, lat, lng))
		}
	}
	return ib
}

// fromInternalBusiness rebuilds a public record for custom rule callbacks.
func fromInternalBusiness(b business.Business) Business {
	out := Business{
		ID:            b.ID(),
		AverageRating: b.AverageRating(),
		TotalReviews:  b.TotalReviews(),
	}
	if id, ok := b.InterestID(); ok {
		out.InterestID = id
	}
	if id, ok := b.SubInterestID(); ok {
		out.SubInterestID = id
	}
	if r, ok := b.PriceRange(); ok {
		out.PriceRange = string(r)
	}
	if km, ok := b.DistanceKm(); ok {
		out.DistanceKm = &km
	}
	for _, dim := range []business.Dimension{
		business.Punctuality, business.Friendliness,
		business.Trustworthiness, business.CostEffectiveness,
	} {
		if b.HasPercentile(dim) {
			if out.Percentiles == nil {
				out.Percentiles = make(map[string]float64, 4)
			}
			out.Percentiles[string(dim)] = b.Percentile(dim, 0)
		}
	}
	if verified, ok := b.Verified(); ok {
		out.Verified = &verified
	}
	if lat, lng, ok := b.Coordinates(); ok {
		out.Latitude = &lat
		out.Longitude = &lng
	}
	if ts, ok := b.UpdatedAt(); ok {
		out.UpdatedAt = ts
	}
	return out
}

func toInternalPrefs(p Preferences) prefs.Preferences {
	opts := []prefs.Option{
		prefs.WithInterests(p.InterestIDs...),
		prefs.WithSubcategories(p.SubcategoryIDs...),
		prefs.WithDealBreakers(p.DealbreakerIDs...),
	}
	if p.Latitude != nil && p.Longitude != nil {
		opts = append(opts, prefs.WithLocation(*p.Latitude, *p.Longitude))
	}
	return prefs.New(opts...)
}

func fromInternalScore(sc score.Score) Score {
	bd := sc.Breakdown()
	return Score{
		Total: sc.Total(),
		Breakdown: Breakdown{
			Interest:     bd.Interest,
			Subcategory:  bd.Subcategory,
			DealBreakers: bd.DealBreakers,
			Distance:     bd.Distance,
			Rating:       bd.Rating,
			Freshness:    bd.Freshness,
		},
		Insights: sc.Insights(),
	}
}
