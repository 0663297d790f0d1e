package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// durationBuckets covers sub-millisecond test runs up to multi-minute logs.
var durationBuckets = []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 30000, 120000, 600000} //nolint:gochecknoglobals // default buckets

// Manager owns all Prometheus metrics of a run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Ingestion
	rowsRead      prometheus.Counter
	rowsMalformed prometheus.Counter
	playersTotal  prometheus.Gauge
	aggregationMs prometheus.Histogram

	// Ranking
	rankingEntries prometheus.Gauge
	rankingMs      prometheus.Histogram

	// Run outcome
	runs                 *prometheus.CounterVec
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// the metrics are registered on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "playrank",
		subsystem:        "ranking",
		histogramBuckets: durationBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.rowsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rows_read_total",
		Help:        "Total number of play log rows aggregated",
		ConstLabels: labels,
	})

	m.rowsMalformed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rows_malformed_total",
		Help:        "Total number of play log rows rejected as malformed",
		ConstLabels: labels,
	})

	m.playersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players_total",
		Help:        "Number of distinct players seen in the play log",
		ConstLabels: labels,
	})

	m.aggregationMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_duration_milliseconds",
		Help:        "Time spent streaming and aggregating the play log",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.rankingEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "entries",
		Help:        "Number of entries in the last built ranking",
		ConstLabels: labels,
	})

	m.rankingMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "build_duration_milliseconds",
		Help:        "Time spent sorting and truncating the ranking",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.runs = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "runs_total",
			Help:        "Total number of ranking runs by outcome",
			ConstLabels: labels,
		},
		[]string{"status"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_component_total",
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)
}

// Registry returns the registry the manager's metrics live on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// RecordRowRead increments the aggregated rows counter.
func (m *Manager) RecordRowRead() {
	if m.enabled {
		m.rowsRead.Inc()
	}
}

// RecordRowMalformed increments the malformed rows counter.
func (m *Manager) RecordRowMalformed() {
	if m.enabled {
		m.rowsMalformed.Inc()
	}
}

// UpdatePlayersTotal sets the distinct players gauge.
func (m *Manager) UpdatePlayersTotal(count int) {
	if m.enabled {
		m.playersTotal.Set(float64(count))
	}
}

// RecordAggregationDuration observes an aggregation duration in milliseconds.
func (m *Manager) RecordAggregationDuration(ms float64) {
	if m.enabled {
		m.aggregationMs.Observe(ms)
	}
}

// UpdateRankingEntries sets the ranking size gauge.
func (m *Manager) UpdateRankingEntries(count int) {
	if m.enabled {
		m.rankingEntries.Set(float64(count))
	}
}

// RecordRankingDuration observes a ranking build duration in milliseconds.
func (m *Manager) RecordRankingDuration(ms float64) {
	if m.enabled {
		m.rankingMs.Observe(ms)
	}
}

// RecordRun counts a finished run by status ("ok" or "error").
func (m *Manager) RecordRun(status string) {
	if m.enabled {
		m.runs.WithLabelValues(status).Inc()
	}
}

// RecordErrorByComponent counts an error raised by a component.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	if m.enabled {
		m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// WriteTextfile writes the registry in Prometheus text format to path,
// suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager { return globalManager }

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry { return customRegistry }

// RecordRowRead increments the aggregated rows counter on the global manager.
func RecordRowRead() { globalManager.RecordRowRead() }

// RecordRowMalformed increments the malformed rows counter on the global manager.
func RecordRowMalformed() { globalManager.RecordRowMalformed() }

// UpdatePlayersTotal sets the distinct players gauge on the global manager.
func UpdatePlayersTotal(count int) { globalManager.UpdatePlayersTotal(count) }

// RecordAggregationDuration observes an aggregation duration on the global manager.
func RecordAggregationDuration(ms float64) { globalManager.RecordAggregationDuration(ms) }

// UpdateRankingEntries sets the ranking size gauge on the global manager.
func UpdateRankingEntries(count int) { globalManager.UpdateRankingEntries(count) }

// RecordRankingDuration observes a ranking build duration on the global manager.
func RecordRankingDuration(ms float64) { globalManager.RecordRankingDuration(ms) }

// RecordRun counts a finished run on the global manager.
func RecordRun(status string) { globalManager.RecordRun(status) }

// RecordErrorByComponent counts a component error on the global manager.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// WriteTextfile writes the global registry to path.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }
