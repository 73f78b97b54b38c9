package personalize

import (
	"fmt"

	"github.com/locallens/bizrank/internal/domain"
	"github.com/locallens/bizrank/internal/domain/business"
)

// Rule decides whether a business passes one deal-breaker check.
// A rule that errors is never allowed to hide a listing: every call site
// applies its own fail-open policy (see Service).
type Rule func(business.Business) (bool, error)

// Recognized deal-breaker rule ids.
const (
	RuleTrustworthiness = "trustworthiness"
	RulePunctuality     = "punctuality"
	RuleFriendliness    = "friendliness"
	RuleValueForMoney   = "value-for-money"
	RuleExpensive       = "expensive"
	RuleSlowService     = "slow-service"
	RuleNoParking       = "no-parking"
	RuleCashOnly        = "cash-only"
	RuleBadHygiene      = "bad-hygiene"
)

// Percentile defaults and thresholds of the rule table. The slow-service
// check is a deliberately coarser cut on the same percentile as punctuality;
// it keys to a different user complaint.
const (
	defaultPercentile     = 80
	defaultCostPercentile = 85

	punctualityMin  = 70
	friendlinessMin = 65
	costValueMin    = 75
	slowServiceMin  = 60
)

// defaultRules builds the rule registry. The returned map is owned by one
// Service instance; the table itself never changes after construction.
func defaultRules() map[string]Rule {
	alwaysPass := func(business.Business) (bool, error) { return true, nil }

	return map[string]Rule{
		// Benefit of the doubt: only an explicit verified=false fails.
		RuleTrustworthiness: func(b business.Business) (bool, error) {
			verified, ok := b.Verified()
			return !ok || verified, nil
		},
		RulePunctuality: func(b business.Business) (bool, error) {
			return b.Percentile(business.Punctuality, defaultPercentile) >= punctualityMin, nil
		},
		RuleFriendliness: func(b business.Business) (bool, error) {
			return b.Percentile(business.Friendliness, defaultPercentile) >= friendlinessMin, nil
		},
		RuleValueForMoney: func(b business.Business) (bool, error) {
			if r, ok := b.PriceRange(); ok {
				return r.BudgetFriendly(), nil
			}
			return b.Percentile(business.CostEffectiveness, defaultCostPercentile) >= costValueMin, nil
		},
		// Unknown price passes: absence of a tier is not evidence of expense.
		RuleExpensive: func(b business.Business) (bool, error) {
			r, ok := b.PriceRange()
			return !ok || !r.Expensive(), nil
		},
		RuleSlowService: func(b business.Business) (bool, error) {
			return b.Percentile(business.Punctuality, defaultPercentile) >= slowServiceMin, nil
		},
		// Placeholders: no backing business attribute exists yet, so these
		// always pass. TODO: wire no-parking and cash-only to structured
		// amenity data once the directory records it.
		RuleNoParking:  alwaysPass,
		RuleCashOnly:   alwaysPass,
		RuleBadHygiene: alwaysPass,
	}
}

// safeEval runs a rule, converting errors and panics into ErrRuleFailed so
// callers can apply their fail-open policies against a single error shape.
func safeEval(rule Rule, b business.Business) (pass bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			pass = false
			err = fmt.Errorf("%w: panic: %v", domain.ErrRuleFailed, r)
		}
	}()

	pass, ruleErr := rule(b)
	if ruleErr != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrRuleFailed, ruleErr)
	}
	return pass, nil
}
