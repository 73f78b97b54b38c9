package metrics

import "github.com/prometheus/client_golang/prometheus"

// Personalization Prometheus metrics.
var (
	RankOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bizrank",
			Name:      "rank_operations_total",
			Help:      "Total number of ranking operations",
		},
		[]string{"operation"},
	)

	RankOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bizrank",
			Name:      "rank_operation_duration_seconds",
			Help:      "Ranking operation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	BusinessesScoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bizrank",
			Name:      "businesses_scored_total",
			Help:      "Total businesses scored",
		},
	)

	BusinessesFilteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bizrank",
			Name:      "businesses_filtered_total",
			Help:      "Total businesses removed by deal-breaker filtering",
		},
	)
)

var rankMetricsRegistered bool

// RegisterRankingMetrics registers Prometheus ranking metrics. Must be called once from main.
func RegisterRankingMetrics() {
	if rankMetricsRegistered {
		return
	}
	prometheus.MustRegister(RankOperationsTotal)
	prometheus.MustRegister(RankOperationDuration)
	prometheus.MustRegister(BusinessesScoredTotal)
	prometheus.MustRegister(BusinessesFilteredTotal)
	rankMetricsRegistered = true
}
