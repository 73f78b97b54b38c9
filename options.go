package bizrank

import (
	"time"

	"go.uber.org/zap"
)

// Option configures engine construction.
type Option func(*engineConfig)

type engineConfig struct {
	weights Weights
	logger  *zap.Logger
	metrics bool
	clock   func() time.Time
	rules   map[string]Rule
}

// WithWeights replaces the default scoring weight table.
func WithWeights(w Weights) Option {
	return func(c *engineConfig) { c.weights = w }
}

// WithLogger enables debug logging of scoring operations.
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithMetrics registers and records Prometheus ranking metrics.
func WithMetrics() Option {
	return func(c *engineConfig) { c.metrics = true }
}

// WithRule overrides or registers a deal-breaker rule under the given id.
func WithRule(id string, rule Rule) Option {
	return func(c *engineConfig) {
		if c.rules == nil {
			c.rules = make(map[string]Rule)
		}
		c.rules[id] = rule
	}
}

// WithClock overrides the freshness clock. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) { c.clock = now }
}
