package personalize

import (
	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/domain/score"
)

// Ranker is the scoring contract implemented by Service and its decorators.
type Ranker interface {
	Score(b business.Business, p prefs.Preferences) score.Score
	FilterByDealBreakers(businesses []business.Business, dealBreakerIDs []string) []business.Business
	SortByPersonalization(businesses []business.Business, p prefs.Preferences) []business.Business
	BoostPersonalMatches(businesses []business.Business, p prefs.Preferences) []Ranked
}
