package personalize

import (
	"time"

	"go.uber.org/zap"

	"github.com/locallens/bizrank/internal/domain/business"
	"github.com/locallens/bizrank/internal/domain/prefs"
	"github.com/locallens/bizrank/internal/domain/score"
	"github.com/locallens/bizrank/internal/metrics"
)

// InstrumentedRanker wraps a Ranker with logging and Prometheus metrics.
// The inner engine stays pure; all observability lives in this layer.
type InstrumentedRanker struct {
	inner  Ranker
	logger *zap.Logger
}

// NewInstrumentedRanker wraps a ranker with observability.
func NewInstrumentedRanker(inner Ranker, logger *zap.Logger) *InstrumentedRanker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedRanker{inner: inner, logger: logger}
}

// Score delegates to the inner ranker and records one scored business.
func (r *InstrumentedRanker) Score(b business.Business, p prefs.Preferences) score.Score {
	start := time.Now()

	sc := r.inner.Score(b, p)

	r.observe("score", start)
	metrics.BusinessesScoredTotal.Inc()

	r.logger.Debug("Business scored",
		zap.String("business_id", b.ID()),
		zap.Float64("total_score", sc.Total()),
		zap.Int("insights", len(sc.Insights())),
	)
	return sc
}

// FilterByDealBreakers delegates and records how many businesses were dropped.
func (r *InstrumentedRanker) FilterByDealBreakers(
	businesses []business.Business, dealBreakerIDs []string,
) []business.Business {
	start := time.Now()

	out := r.inner.FilterByDealBreakers(businesses, dealBreakerIDs)

	r.observe("filter", start)
	if dropped := len(businesses) - len(out); dropped > 0 {
		metrics.BusinessesFilteredTotal.Add(float64(dropped))
	}

	r.logger.Debug("Deal-breaker filter applied",
		zap.Int("candidates", len(businesses)),
		zap.Int("survivors", len(out)),
		zap.Strings("deal_breakers", dealBreakerIDs),
	)
	return out
}

// SortByPersonalization delegates and records duration.
func (r *InstrumentedRanker) SortByPersonalization(
	businesses []business.Business, p prefs.Preferences,
) []business.Business {
	start := time.Now()

	out := r.inner.SortByPersonalization(businesses, p)

	r.observe("sort", start)
	metrics.BusinessesScoredTotal.Add(float64(len(businesses)))

	r.logger.Debug("Businesses sorted by personalization",
		zap.Int("candidates", len(businesses)),
		zap.Duration("duration", time.Since(start)),
	)
	return out
}

// BoostPersonalMatches delegates and records duration.
func (r *InstrumentedRanker) BoostPersonalMatches(
	businesses []business.Business, p prefs.Preferences,
) []Ranked {
	start := time.Now()

	out := r.inner.BoostPersonalMatches(businesses, p)

	r.observe("boost", start)
	metrics.BusinessesScoredTotal.Add(float64(len(businesses)))

	return out
}

func (r *InstrumentedRanker) observe(op string, start time.Time) {
	metrics.RankOperationsTotal.WithLabelValues(op).Inc()
	metrics.RankOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
