package aggregate

import "github.com/okian/playrank/pkg/metrics"

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithMetrics routes aggregation metrics to m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(a *Aggregator) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithCancelCheckInterval sets how many rows are consumed between
// context cancellation checks.
func WithCancelCheckInterval(rows int) Option {
	return func(a *Aggregator) {
		if rows > 0 {
			a.cancelEvery = rows
		}
	}
}
