// Package metrics provides Prometheus metrics for pistachio pipeline runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Manager manages all Prometheus metrics for a pipeline process.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	runsTotal      *prometheus.CounterVec
	runDuration    prometheus.Histogram
	lastRunSeconds prometheus.Gauge

	stageDuration *prometheus.HistogramVec
	stageRows     *prometheus.GaugeVec
	stageErrors   *prometheus.CounterVec

	sourceRows *prometheus.GaugeVec

	playersUnscouted   prometheus.Gauge
	playersMissingWAR  *prometheus.GaugeVec
	playersFlagged     prometheus.Gauge
	duplicatesSkipped  *prometheus.CounterVec
	reportRows         *prometheus.GaugeVec
	pitcherRoles       *prometheus.GaugeVec
	bestPositionCounts *prometheus.GaugeVec
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics singleton

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps Go runtime collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pistachio",
		subsystem:        "pipeline",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.runsTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_total",
		Help:        "Pipeline runs by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_seconds",
		Help:        "Wall time of a full pipeline run",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.lastRunSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_timestamp_seconds",
		Help:        "Unix time the last run finished",
		ConstLabels: m.constLabels,
	})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_duration_seconds",
		Help:        "Wall time per pipeline stage",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.stageRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_rows",
		Help:        "Players in the table after each stage",
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.stageErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_errors_total",
		Help:        "Stage failures that aborted a run",
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.sourceRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_rows",
		Help:        "Rows read from each input extract",
		ConstLabels: m.constLabels,
	}, []string{"source"})

	m.playersUnscouted = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players_unscouted",
		Help:        "Players with no scouted ratings from the configured scout",
		ConstLabels: m.constLabels,
	})

	m.playersMissingWAR = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players_missing_war",
		Help:        "Players whose standardized WAR could not be computed",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.playersFlagged = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players_flagged",
		Help:        "Players matched by the flagged-name list",
		ConstLabels: m.constLabels,
	})

	m.duplicatesSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duplicate_rows_skipped_total",
		Help:        "Rows dropped because their player id was already merged",
		ConstLabels: m.constLabels,
	}, []string{"source"})

	m.reportRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "report_rows",
		Help:        "Rows written to each report",
		ConstLabels: m.constLabels,
	}, []string{"report"})

	m.pitcherRoles = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "pitcher_roles",
		Help:        "Pitchers per role classification",
		ConstLabels: m.constLabels,
	}, []string{"role", "ratings"})

	m.bestPositionCounts = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "best_position_players",
		Help:        "Players per best standardized-WAR position",
		ConstLabels: m.constLabels,
	}, []string{"position", "ratings"})
}

// Run metrics.

// RecordRun records the outcome and duration of a pipeline run.
func RecordRun(outcome string, seconds float64, finishedUnix float64) {
	globalManager.runsTotal.WithLabelValues(outcome).Inc()
	globalManager.runDuration.Observe(seconds)
	globalManager.lastRunSeconds.Set(finishedUnix)
}

// Stage metrics.

// RecordStage records a completed stage's duration and resulting row count.
func RecordStage(stage string, seconds float64, rows int) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(seconds)
	globalManager.stageRows.WithLabelValues(stage).Set(float64(rows))
}

// RecordStageError counts a stage failure.
func RecordStageError(stage string) {
	globalManager.stageErrors.WithLabelValues(stage).Inc()
}

// Input and data quality metrics.

// UpdateSourceRows sets the number of rows read from an extract.
func UpdateSourceRows(source string, rows int) {
	globalManager.sourceRows.WithLabelValues(source).Set(float64(rows))
}

// RecordDuplicatesSkipped counts rows dropped by first-wins merging.
func RecordDuplicatesSkipped(source string, n int) {
	globalManager.duplicatesSkipped.WithLabelValues(source).Add(float64(n))
}

// UpdatePlayersUnscouted sets the number of players without scouted ratings.
func UpdatePlayersUnscouted(n int) {
	globalManager.playersUnscouted.Set(float64(n))
}

// UpdatePlayersMissingWAR sets the number of players with no computable WAR of a kind.
func UpdatePlayersMissingWAR(kind string, n int) {
	globalManager.playersMissingWAR.WithLabelValues(kind).Set(float64(n))
}

// UpdatePlayersFlagged sets the number of flagged players.
func UpdatePlayersFlagged(n int) {
	globalManager.playersFlagged.Set(float64(n))
}

// Output metrics.

// UpdateReportRows sets the number of rows written to a report.
func UpdateReportRows(report string, rows int) {
	globalManager.reportRows.WithLabelValues(report).Set(float64(rows))
}

// UpdatePitcherRoles sets the number of pitchers in a role for a rating set.
func UpdatePitcherRoles(role, ratings string, n int) {
	globalManager.pitcherRoles.WithLabelValues(role, ratings).Set(float64(n))
}

// UpdateBestPosition sets the number of players whose best position is pos.
func UpdateBestPosition(pos, ratings string, n int) {
	globalManager.bestPositionCounts.WithLabelValues(pos, ratings).Set(float64(n))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes every registered metric to path in the text exposition
// format, for collection by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
