// Package metrics exposes Prometheus collectors for the content API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service collectors and the registry they live in.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	enrichmentFailures  *prometheus.CounterVec
	locationsAggregated prometheus.Histogram
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets overrides the latency buckets.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithGoCollectors registers the Go runtime and process collectors.
func WithGoCollectors() Option {
	return func(m *Manager) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// NewManager builds a Manager backed by its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "hbh",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	m.enrichmentFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "works",
		Name:      "enrichment_failures_total",
		Help:      "Best-effort works enrichment lookups that failed, by kind.",
	}, []string{"kind"})

	m.locationsAggregated = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "aggregation",
		Name:      "locations",
		Help:      "Number of location aggregates built per request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.registry.MustRegister(m.httpRequests, m.httpRequestDuration, m.enrichmentFailures, m.locationsAggregated)
	return m
}

// RecordHTTPRequest counts a finished request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method, status string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordEnrichmentFailure counts a failed thumbnail/tag/image lookup.
func (m *Manager) RecordEnrichmentFailure(kind string) {
	m.enrichmentFailures.WithLabelValues(kind).Inc()
}

// RecordLocationsAggregated observes the size of a location aggregation.
func (m *Manager) RecordLocationsAggregated(n int) {
	m.locationsAggregated.Observe(float64(n))
}

// Registry returns the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

var global = NewManager(WithGoCollectors()) //nolint:gochecknoglobals // process-wide collectors

// Default returns the process-wide manager.
func Default() *Manager { return global }

