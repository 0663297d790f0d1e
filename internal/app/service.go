// Package service composes the play-log reader, the aggregator and the
// ranking builder into a single report run.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/playrank/internal/adapters/playlog"
	"github.com/okian/playrank/internal/config"
	"github.com/okian/playrank/internal/domain/aggregate"
	"github.com/okian/playrank/internal/domain/ranking"
	"github.com/okian/playrank/pkg/logger"
	"github.com/okian/playrank/pkg/metrics"
)

// Run outcome labels.
const (
	statusOK    = "ok"
	statusError = "error"
)

// Service produces ranking reports from play logs.
type Service struct {
	minCount        int
	comma           rune
	skipHeader      bool
	metricsTextfile string

	metrics *metrics.Manager
	logger  logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minCount:   config.DefaultMinCount,
		comma:      ',',
		skipHeader: true,
		metrics:    metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// FromConfig maps a loaded Config onto service options.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithMinCount(cfg.MinCount),
		WithDelimiter(cfg.Comma()),
		WithSkipHeader(cfg.SkipHeader),
		WithMetricsTextfile(cfg.MetricsTextfile),
	}
}

// Rank streams r through the aggregator and builds the ranking.
func (s *Service) Rank(ctx context.Context, r io.Reader) (*ranking.Ranking, error) {
	agg := aggregate.New(aggregate.WithMetrics(s.metrics))
	src := playlog.NewReader(r, playlog.WithComma(s.comma), playlog.WithHeader(s.skipHeader))

	start := time.Now()
	if err := agg.Consume(ctx, src); err != nil {
		return nil, err
	}
	rows, players := agg.Rows(), agg.Len()
	s.logger.Debug(ctx, "play log aggregated",
		logger.Int64("rows", rows),
		logger.Int("players", players),
		logger.Duration("elapsed", time.Since(start)),
	)

	return ranking.Build(agg.Players(), s.minCount, ranking.WithMetrics(s.metrics))
}

// Run reads the play log at path and writes the report to out. Nothing is
// written to out unless the whole log was aggregated successfully.
func (s *Service) Run(ctx context.Context, path string, out io.Writer) (err error) {
	runID := uuid.NewString()
	log := s.logger.With(logger.String("run_id", runID), logger.String("path", path))
	start := time.Now()

	defer func() {
		status := statusOK
		if err != nil {
			status = statusError
			log.Error(ctx, "ranking run failed", logger.Error(err))
		}
		s.metrics.RecordRun(status)
		s.exportMetrics(ctx, log)
	}()

	f, err := os.Open(path)
	if err != nil {
		s.metrics.RecordErrorByComponent("service", "open_log")
		return fmt.Errorf("%w: %w", ErrOpenLog, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn(ctx, "failed to close play log", logger.Error(cerr))
		}
	}()

	log.Info(ctx, "ranking run started", logger.Int("min_count", s.minCount))

	rk, err := s.Rank(ctx, f)
	if err != nil {
		var me *playlog.MalformedInputError
		if errors.As(err, &me) {
			log.Warn(ctx, "malformed play log row", logger.Int("line", me.Line), logger.String("field", me.Field))
		}
		return err
	}

	if err := rk.WriteCSV(out); err != nil {
		s.metrics.RecordErrorByComponent("service", "write_report")
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	log.Info(ctx, "ranking run finished",
		logger.Int("entries", rk.Len()),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (s *Service) exportMetrics(ctx context.Context, log logger.Logger) {
	if s.metricsTextfile == "" {
		return
	}
	if err := s.metrics.WriteTextfile(s.metricsTextfile); err != nil {
		log.Warn(ctx, "failed to export metrics", logger.Error(err))
	}
}
