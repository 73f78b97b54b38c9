package personalize

import (
	"fmt"
	"strings"

	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
)

// insights builds the human-readable match notes for one business. The list
// follows a fixed evaluation order independent of score magnitude, ending
// with a single combined deal-breaker warning. Rule errors are swallowed
// here: a display string must never hide or invent a violation.
func (s *Service) insights(b business.Business, p prefs.Preferences) []string {
	var out []string

	if id, ok := b.InterestID(); ok && p.HasInterest(id) {
		out = append(out, "Matches your interest in this category")
	}
	if id, ok := b.SubInterestID(); ok && p.HasSubcategory(id) {
		out = append(out, "Specializes in one of your favorite subcategories")
	}
	if avg := b.AverageRating(); avg >= s.weights.HighRatingInsightMin {
		out = append(out, fmt.Sprintf("Highly rated by the community (%.1f stars)", avg))
	}
	if b.HasPercentile(business.Friendliness) &&
		b.Percentile(business.Friendliness, 0) >= s.weights.FriendlinessInsightMin {
		out = append(out, "Known for friendly service")
	}
	if b.HasPercentile(business.Punctuality) &&
		b.Percentile(business.Punctuality, 0) >= s.weights.PunctualityInsightMin {
		out = append(out, "Known for punctual service")
	}
	if r, ok := b.PriceRange(); ok && r.BudgetFriendly() {
		out = append(out, "Budget-friendly pricing")
	}

	if violated := s.violatedRuleIDs(b, p.DealBreakers()); len(violated) > 0 {
		out = append(out, fmt.Sprintf(
			"May not match your preferences: %s", strings.Join(violated, ", "),
		))
	}

	return out
}

// violatedRuleIDs re-evaluates the active rules, returning failed ids in
// sorted order. Errors count as no violation.
func (s *Service) violatedRuleIDs(b business.Business, ids []string) []string {
	var violated []string
	for _, ar := range s.activeRules(ids) {
		pass, err := safeEval(ar.rule, b)
		if err != nil {
			continue
		}
		if !pass {
			violated = append(violated, ar.id)
		}
	}
	return violated
}
