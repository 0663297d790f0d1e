package ranking

import "github.com/okian/playrank/pkg/metrics"

// Option applies a configuration option to Build.
type Option func(*builder)

type builder struct {
	metrics *metrics.Manager
}

// WithMetrics routes ranking metrics to m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(b *builder) {
		if m != nil {
			b.metrics = m
		}
	}
}
