package personalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/domain/price"
)

func TestInsights_FullSequence(t *testing.T) {
	svc := newService(t)
	p := prefs.New(
		prefs.WithInterests("food"),
		prefs.WithSubcategories("sushi"),
		prefs.WithDealBreakers("trustworthiness"),
	)
	b := business.New("b",
		business.WithInterest("food"),
		business.WithSubInterest("sushi"),
		business.WithRating(4.8, 120),
		business.WithPercentiles(map[business.Dimension]float64{
			business.Friendliness: 85,
			business.Punctuality:  91,
		}),
		business.WithPriceRange(price.Moderate),
		business.WithVerified(false),
	)

	insights := svc.Score(b, p).Insights()
	if len(insights) != 7 {
		t.Fatalf("got %d insights: %v", len(insights), insights)
	}

	// Fixed evaluation order, not score order.
	if !strings.Contains(strings.ToLower(insights[0]), "interest") {
		t.Errorf("insight[0] should mention the interest match: %q", insights[0])
	}
	if !strings.Contains(insights[1], "subcategories") {
		t.Errorf("insight[1] should be the distinct subcategory note: %q", insights[1])
	}
	if insights[0] == insights[1] {
		t.Errorf("interest and subcategory notes must be phrased distinctly")
	}
	if !strings.Contains(insights[2], "4.8") {
		t.Errorf("insight[2] should carry the rating: %q", insights[2])
	}
	if !strings.Contains(insights[3], "friendly") {
		t.Errorf("insight[3] = %q", insights[3])
	}
	if !strings.Contains(insights[4], "punctual") {
		t.Errorf("insight[4] = %q", insights[4])
	}
	if !strings.Contains(insights[5], "Budget-friendly") {
		t.Errorf("insight[5] = %q", insights[5])
	}
	if !strings.Contains(insights[6], "trustworthiness") {
		t.Errorf("insight[6] should warn about the failed deal-breaker: %q", insights[6])
	}
}

func TestInsights_EmptyWhenNothingApplies(t *testing.T) {
	svc := newService(t)
	insights := svc.Score(business.New("b"), prefs.New()).Insights()
	if len(insights) != 0 {
		t.Fatalf("got %v, want none", insights)
	}
}

func TestInsights_CombinedWarningListsAllViolations(t *testing.T) {
	svc := newService(t)
	p := prefs.New(prefs.WithDealBreakers("expensive", "trustworthiness"))
	b := business.New("b",
		business.WithVerified(false),
		business.WithPriceRange(price.Luxury),
	)

	insights := svc.Score(b, p).Insights()
	if len(insights) != 1 {
		t.Fatalf("want a single combined warning, got %v", insights)
	}
	// Violated ids are listed in sorted order for determinism.
	if !strings.Contains(insights[0], "expensive, trustworthiness") {
		t.Fatalf("warning = %q", insights[0])
	}
}

func TestInsights_ThresholdEdges(t *testing.T) {
	svc := newService(t)

	t.Run("rating below threshold", func(t *testing.T) {
		b := business.New("b", business.WithRating(4.49, 10))
		for _, in := range svc.Score(b, prefs.New()).Insights() {
			if strings.Contains(in, "rated") {
				t.Fatalf("4.49 should not earn the high-rating note: %q", in)
			}
		}
	})
	t.Run("rating at threshold", func(t *testing.T) {
		b := business.New("b", business.WithRating(4.5, 10))
		insights := svc.Score(b, prefs.New()).Insights()
		if len(insights) != 1 || !strings.Contains(insights[0], "rated") {
			t.Fatalf("4.5 should earn the high-rating note: %v", insights)
		}
	})
	t.Run("absent percentiles earn no service notes", func(t *testing.T) {
		// Unlike rule defaults, insight checks require a recorded percentile.
		b := business.New("b")
		if got := svc.Score(b, prefs.New()).Insights(); len(got) != 0 {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("friendliness at 80", func(t *testing.T) {
		b := business.New("b", business.WithPercentile(business.Friendliness, 80))
		insights := svc.Score(b, prefs.New()).Insights()
		if len(insights) != 1 || !strings.Contains(insights[0], "friendly") {
			t.Fatalf("got %v", insights)
		}
	})
}

func TestInsights_RuleErrorMeansNoViolation(t *testing.T) {
	svc := newService(t).WithRule("glitchy", func(business.Business) (bool, error) {
		return false, errors.New("corrupt attribute")
	})
	p := prefs.New(prefs.WithDealBreakers("glitchy"))

	insights := svc.Score(business.New("b"), p).Insights()
	for _, in := range insights {
		if strings.Contains(in, "glitchy") {
			t.Fatalf("erroring rule must be omitted from the warning: %q", in)
		}
	}
	if len(insights) != 0 {
		t.Fatalf("got %v, want none", insights)
	}
}

func TestInsights_OrderIndependentOfScoreMagnitude(t *testing.T) {
	svc := newService(t)
	// Budget pricing scores nothing by itself, yet its note still appears
	// after the rating note, never before.
	b := business.New("b",
		business.WithRating(5, 1),
		business.WithPriceRange(price.Budget),
	)
	insights := svc.Score(b, prefs.New()).Insights()
	if len(insights) != 2 {
		t.Fatalf("got %v", insights)
	}
	if !strings.Contains(insights[0], "rated") || !strings.Contains(insights[1], "Budget") {
		t.Fatalf("fixed sequence violated: %v", insights)
	}
}
