// Package metrics provides Prometheus metrics for the portfolio content service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the portfolio service.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Contact form metrics
	contactSubmissions *prometheus.CounterVec

	// Resume delivery metrics
	resumeDownloads *prometheus.CounterVec
	resumePreviews  *prometheus.CounterVec

	// Filter engine metrics
	filterQueries   *prometheus.CounterVec
	filterNoMatches *prometheus.CounterVec

	// Navigation metrics
	navigationJumps *prometheus.CounterVec
	scrollEvents    prometheus.Counter

	// Data integrity metrics
	dataDiagnostics prometheus.Gauge

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// defaultManager is the package-wide manager backing the helper functions.
var defaultManager *Manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	defaultManager = NewManager()
}

// NewManager creates a new metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "portfolio",
		registry:  prometheus.NewRegistry(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method, and status code.",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"endpoint", "method", "status_code"})

	m.contactSubmissions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome (invalid, success, error, rejected).",
	}, []string{"outcome"})

	m.resumeDownloads = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "resume_downloads_total",
		Help:      "Resume downloads by format and outcome.",
	}, []string{"format", "outcome"})

	m.resumePreviews = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "resume_previews_total",
		Help:      "Resume previews by format.",
	}, []string{"format"})

	m.filterQueries = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "filter_queries_total",
		Help:      "Filtered view computations by collection.",
	}, []string{"collection"})

	m.filterNoMatches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "filter_no_matches_total",
		Help:      "Filter computations that produced zero results on a non-empty source.",
	}, []string{"collection"})

	m.navigationJumps = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "navigation_jumps_total",
		Help:      "Programmatic section navigations by target section.",
	}, []string{"section"})

	m.scrollEvents = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "scroll_events_total",
		Help:      "Passive scroll events processed by the tracker.",
	})

	m.dataDiagnostics = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "data_diagnostics",
		Help:      "Number of data-integrity diagnostics from the last validation run.",
	})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes.",
	})

	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines.",
	})
}

// Registry returns the manager's Prometheus registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Package-level helpers backed by the default manager.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordContactSubmission records a contact form submission outcome.
func RecordContactSubmission(outcome string) {
	defaultManager.contactSubmissions.WithLabelValues(outcome).Inc()
}

// RecordResumeDownload records a resume download attempt.
func RecordResumeDownload(format, outcome string) {
	defaultManager.resumeDownloads.WithLabelValues(format, outcome).Inc()
}

// RecordResumePreview records a resume preview.
func RecordResumePreview(format string) {
	defaultManager.resumePreviews.WithLabelValues(format).Inc()
}

// RecordFilterQuery records a filtered view computation.
func RecordFilterQuery(collection string) {
	defaultManager.filterQueries.WithLabelValues(collection).Inc()
}

// RecordFilterNoMatches records a zero-result filter on a non-empty source.
func RecordFilterNoMatches(collection string) {
	defaultManager.filterNoMatches.WithLabelValues(collection).Inc()
}

// RecordNavigation records a programmatic navigation to a section.
func RecordNavigation(section string) {
	defaultManager.navigationJumps.WithLabelValues(section).Inc()
}

// RecordScrollEvent records a passive scroll event.
func RecordScrollEvent() {
	defaultManager.scrollEvents.Inc()
}

// UpdateDataDiagnostics sets the diagnostics count from the last validation run.
func UpdateDataDiagnostics(count int) {
	defaultManager.dataDiagnostics.Set(float64(count))
}

// UpdateSystemMemoryUsage updates the allocated memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	defaultManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	defaultManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the default manager's registry for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return defaultManager.Registry()
}
