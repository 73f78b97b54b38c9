package business

import (
	"testing"
	"time"

	"github.com/locallens/bizrank/internal/domain/price"
)

func TestNew_Defaults(t *testing.T) {
	b := New("biz-1")

	if b.ID() != "biz-1" {
		t.Fatalf("id = %q", b.ID())
	}
	if _, ok := b.InterestID(); ok {
		t.Errorf("interest should be absent")
	}
	if _, ok := b.SubInterestID(); ok {
		t.Errorf("sub-interest should be absent")
	}
	if _, ok := b.PriceRange(); ok {
		t.Errorf("price range should be unknown")
	}
	if b.AverageRating() != 0 || b.TotalReviews() != 0 {
		t.Errorf("rating defaults wrong: %f/%d", b.AverageRating(), b.TotalReviews())
	}
	if _, ok := b.DistanceKm(); ok {
		t.Errorf("distance should be absent")
	}
	if _, ok := b.Verified(); ok {
		t.Errorf("verified should be unset")
	}
	if _, _, ok := b.Coordinates(); ok {
		t.Errorf("coordinates should be absent")
	}
	if _, ok := b.UpdatedAt(); ok {
		t.Errorf("updatedAt should be absent")
	}
}

func TestVerified_TriState(t *testing.T) {
	unset := New("a")
	if v, ok := unset.Verified(); ok || v {
		t.Fatalf("unset: got %v,%v", v, ok)
	}
	no := New("b", WithVerified(false))
	if v, ok := no.Verified(); !ok || v {
		t.Fatalf("explicit false: got %v,%v", v, ok)
	}
	yes := New("c", WithVerified(true))
	if v, ok := yes.Verified(); !ok || !v {
		t.Fatalf("explicit true: got %v,%v", v, ok)
	}
}

func TestPercentile_FallbackAndClamp(t *testing.T) {
	b := New("p",
		WithPercentile(Punctuality, 92),
		WithPercentile(Friendliness, 150), // clamped to 100
		WithPercentile(Dimension("bogus"), 10),
	)

	if got := b.Percentile(Punctuality, 80); got != 92 {
		t.Errorf("punctuality = %f, want 92", got)
	}
	if got := b.Percentile(Friendliness, 80); got != 100 {
		t.Errorf("friendliness = %f, want clamped 100", got)
	}
	if got := b.Percentile(Trustworthiness, 80); got != 80 {
		t.Errorf("absent dimension = %f, want fallback 80", got)
	}
	if b.HasPercentile(Dimension("bogus")) {
		t.Errorf("unknown dimension should be rejected")
	}
}

func TestWithDistanceKm_RejectsNegative(t *testing.T) {
	b := New("d", WithDistanceKm(-1))
	if _, ok := b.DistanceKm(); ok {
		t.Fatalf("negative distance should be ignored")
	}
	b = New("d", WithDistanceKm(0))
	if km, ok := b.DistanceKm(); !ok || km != 0 {
		t.Fatalf("zero distance is a real distance: got %f,%v", km, ok)
	}
}

func TestWithPriceRange_IgnoresInvalid(t *testing.T) {
	b := New("pr", WithPriceRange(price.Range("$$$$$")))
	if _, ok := b.PriceRange(); ok {
		t.Fatalf("invalid tier should leave price unknown")
	}
	b = New("pr", WithPriceRange(price.Premium))
	if r, ok := b.PriceRange(); !ok || r != price.Premium {
		t.Fatalf("got %q,%v", r, ok)
	}
}

func TestWithCoordinates_Validates(t *testing.T) {
	b := New("c", WithCoordinates(91, 0))
	if _, _, ok := b.Coordinates(); ok {
		t.Fatalf("out-of-range latitude should be ignored")
	}
	b = New("c", WithCoordinates(-33.8688, 151.2093))
	lat, lng, ok := b.Coordinates()
	if !ok || lat != -33.8688 || lng != 151.2093 {
		t.Fatalf("got %f,%f,%v", lat, lng, ok)
	}
}

func TestWithDerivedDistance(t *testing.T) {
	b := New("dd")
	derived := b.WithDerivedDistance(3.2)
	if km, ok := derived.DistanceKm(); !ok || km != 3.2 {
		t.Fatalf("derived = %f,%v", km, ok)
	}
	if _, ok := b.DistanceKm(); ok {
		t.Fatalf("receiver must stay untouched")
	}

	explicit := New("dd", WithDistanceKm(1.5)).WithDerivedDistance(9)
	if km, _ := explicit.DistanceKm(); km != 1.5 {
		t.Fatalf("explicit distance must win, got %f", km)
	}
}

func TestWithRating(t *testing.T) {
	b := New("r", WithRating(4.5, 20), WithUpdatedAt(time.Now()))
	if b.AverageRating() != 4.5 || b.TotalReviews() != 20 {
		t.Fatalf("rating = %f/%d", b.AverageRating(), b.TotalReviews())
	}
	if _, ok := b.UpdatedAt(); !ok {
		t.Fatalf("updatedAt should be present")
	}

	b = New("r", WithRating(3, -5))
	if b.TotalReviews() != 0 {
		t.Fatalf("negative review count should be ignored")
	}
}
