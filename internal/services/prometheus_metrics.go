package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricImportStarted        = "import.started"
	MetricImportCompleted      = "import.completed"
	MetricImportFailed         = "import.failed"
	MetricImportRows           = "import.rows"
	MetricImportDuration       = "import.duration"
	MetricPreviewDuration      = "import.preview.duration"
	MetricRowsDropped          = "import.rows.dropped"
	MetricCategoryResolved     = "import.category.resolved"
	MetricPossibleDuplicate    = "import.possible_duplicate"
	MetricHistorySize          = "import.history.size"
	MetricLastImportCandidates = "import.last.candidates"
)

type PrometheusMetrics struct {
	importsTotal        *prometheus.CounterVec
	importRows          *prometheus.CounterVec
	importDuration      prometheus.Histogram
	previewDuration     prometheus.Histogram
	rowsDropped         *prometheus.CounterVec
	categoriesResolved  *prometheus.CounterVec
	possibleDuplicates  prometheus.Counter
	historySize         prometheus.Gauge
	lastImportCandidate prometheus.Gauge
}

// NewPrometheusMetrics registers the import metrics with reg, or with the default registerer when reg is nil
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		importsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_imports_total",
				Help: "Total number of statement imports by outcome",
			},
			[]string{"status", "schema"},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_import_rows_total",
				Help: "Total number of committed rows by outcome",
			},
			[]string{"outcome"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_import_duration_milliseconds",
				Help:    "Statement commit duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		previewDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_preview_duration_milliseconds",
				Help:    "Statement parse and classification duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		rowsDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_dropped_total",
				Help: "Total number of statement rows dropped while parsing",
			},
			[]string{"reason"},
		),
		categoriesResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_category_resolutions_total",
				Help: "Total number of category resolutions by method",
			},
			[]string{"method"},
		),
		possibleDuplicates: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_possible_duplicates_total",
				Help: "Total number of imported rows resembling an existing transaction",
			},
		),
		historySize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "classification_history_entries",
				Help: "Number of distinct descriptions in the last built classification history",
			},
		),
		lastImportCandidate: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "statement_last_preview_candidates",
				Help: "Number of candidates produced by the last preview",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricImportCompleted:
		m.importsTotal.WithLabelValues("completed", tags["schema"]).Inc()
	case MetricImportFailed:
		m.importsTotal.WithLabelValues("failed", tags["schema"]).Inc()
	case MetricImportStarted:
		m.importsTotal.WithLabelValues("started", tags["schema"]).Inc()
	case MetricImportRows:
		if outcome := tags["outcome"]; outcome != "" {
			m.importRows.WithLabelValues(outcome).Inc()
		}
	case MetricRowsDropped:
		if reason := tags["reason"]; reason != "" {
			m.rowsDropped.WithLabelValues(reason).Inc()
		}
	case MetricCategoryResolved:
		if method := tags["method"]; method != "" {
			m.categoriesResolved.WithLabelValues(method).Inc()
		}
	case MetricPossibleDuplicate:
		m.possibleDuplicates.Inc()
	default:
		if status != "" {
			m.importsTotal.WithLabelValues(status, tags["schema"]).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricImportDuration:
		m.importDuration.Observe(float64(duration.Milliseconds()))
	case MetricPreviewDuration:
		m.previewDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricHistorySize:
		m.historySize.Set(value)
	case MetricLastImportCandidates:
		m.lastImportCandidate.Set(value)
	}
}
