// Package metrics provides Prometheus metrics for the isrevy pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline metrics
	sourceRows        *prometheus.CounterVec
	participantsTotal prometheus.Gauge
	discrepancies     *prometheus.CounterVec
	musicAssigned     prometheus.Counter
	musicUnassigned   prometheus.Counter
	scheduleBuilds    prometheus.Counter
	scheduleEntries   prometheus.Gauge
	runDuration       prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers every metric on the
// configured registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "isrevy",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sourceRows = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "source_rows_total",
		Help:      "Rows read per input source (registration, export, archive)",
	}, []string{"source"})

	m.participantsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "participants",
		Help:      "Canonical participants produced by the latest reconciliation",
	})

	m.discrepancies = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "discrepancies_total",
		Help:      "Soft discrepancies observed, by kind",
	}, []string{"kind"})

	m.musicAssigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "music_assigned_total",
		Help:      "Participants that received a music asset",
	})

	m.musicUnassigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "music_unassigned_total",
		Help:      "Skating participants left without a music asset",
	})

	m.scheduleBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "schedule_builds_total",
		Help:      "Timeline builds performed",
	})

	m.scheduleEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "schedule_entries",
		Help:      "Entries in the latest timeline",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of one full pipeline run",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level record helpers, mirroring the manager's metric set.

func RecordSourceRows(source string, n int) {
	globalManager.sourceRows.WithLabelValues(source).Add(float64(n))
}

func UpdateParticipants(n int) {
	globalManager.participantsTotal.Set(float64(n))
}

func RecordDiscrepancy(kind string) {
	globalManager.discrepancies.WithLabelValues(kind).Inc()
}

func RecordMusicAssignment(assigned bool) {
	if assigned {
		globalManager.musicAssigned.Inc()
	} else {
		globalManager.musicUnassigned.Inc()
	}
}

func RecordScheduleBuild(entries int) {
	globalManager.scheduleBuilds.Inc()
	globalManager.scheduleEntries.Set(float64(entries))
}

func RecordRunDuration(seconds float64) {
	globalManager.runDuration.Observe(seconds)
}

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
