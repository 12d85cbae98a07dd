package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the editing agent.
type Metrics struct {
	registry         *prometheus.Registry
	requestsTotal    prometheus.Counter
	mergesTotal      prometheus.Counter
	exportsTotal     prometheus.Counter
	repairsTotal     prometheus.Counter
	errorsTotal      prometheus.Counter
	sessionClips     prometheus.Gauge
	historyArtifacts prometheus.Gauge
}

// New creates and registers Prometheus metrics for the agent.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clipforge_requests_total",
		Help: "Total number of HTTP requests received",
	})
	mergesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clipforge_merges_total",
		Help: "Total number of merge operations completed",
	})
	exportsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clipforge_exports_total",
		Help: "Total number of export operations completed",
	})
	repairsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clipforge_artifact_repairs_total",
		Help: "Total number of history artifacts whose output url was repaired",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clipforge_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	sessionClips := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clipforge_session_clips",
		Help: "Number of clips in the active editing session",
	})
	historyArtifacts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clipforge_history_artifacts",
		Help: "Number of artifacts in the export history",
	})

	registry.MustRegister(
		requestsTotal,
		mergesTotal,
		exportsTotal,
		repairsTotal,
		errorsTotal,
		sessionClips,
		historyArtifacts,
	)

	return &Metrics{
		registry:         registry,
		requestsTotal:    requestsTotal,
		mergesTotal:      mergesTotal,
		exportsTotal:     exportsTotal,
		repairsTotal:     repairsTotal,
		errorsTotal:      errorsTotal,
		sessionClips:     sessionClips,
		historyArtifacts: historyArtifacts,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncMerges increments the merges counter.
func (m *Metrics) IncMerges() {
	m.mergesTotal.Inc()
}

// IncExports increments the exports counter.
func (m *Metrics) IncExports() {
	m.exportsTotal.Inc()
}

// AddRepairs adds n to the repaired-artifacts counter.
func (m *Metrics) AddRepairs(n int) {
	m.repairsTotal.Add(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// SetSessionClips sets the active session clip gauge.
func (m *Metrics) SetSessionClips(n int) {
	m.sessionClips.Set(float64(n))
}

// SetHistoryArtifacts sets the history size gauge.
func (m *Metrics) SetHistoryArtifacts(n int) {
	m.historyArtifacts.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
