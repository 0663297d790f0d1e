package service

import (
	"github.com/okian/playrank/pkg/logger"
	"github.com/okian/playrank/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMinCount sets the minimum number of ranked rows. Negative values are ignored.
func WithMinCount(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.minCount = n
		}
	}
}

// WithDelimiter sets the play-log field delimiter.
func WithDelimiter(r rune) Option {
	return func(s *Service) {
		if r != 0 {
			s.comma = r
		}
	}
}

// WithSkipHeader controls whether the first play-log record is dropped.
func WithSkipHeader(skip bool) Option {
	return func(s *Service) {
		s.skipHeader = skip
	}
}

// WithMetricsTextfile makes each run export its metrics to path.
func WithMetricsTextfile(path string) Option {
	return func(s *Service) {
		s.metricsTextfile = path
	}
}

// WithMetrics sets the metrics manager used by the run.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
