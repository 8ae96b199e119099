package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exposed on /metrics.
// Each Metrics instance owns its registry, so constructing several instances
// (as tests do) never trips duplicate-registration panics.
type Metrics struct {
	registry       *prometheus.Registry
	handler        http.Handler
	requestsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge
	scanDuration   prometheus.Histogram
	primesFound    prometheus.Counter
}

// NewMetrics creates the instrument set and its /metrics handler.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pprimes_requests_total",
			Help: "Total HTTP requests served, by path.",
		}, []string{"path"}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pprimes_active_requests",
			Help: "HTTP requests currently in flight.",
		}),
		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pprimes_scan_duration_seconds",
			Help:    "Wall-clock duration of prime scans.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		primesFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "pprimes_primes_found_total",
			Help: "Total primes found across all scans.",
		}),
	}

	// Standard Go runtime metrics alongside the application's own.
	registry.MustRegister(collectors.NewGoCollector())

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests bumps the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests lowers the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// CountRequest records one served request for the given path.
func (m *Metrics) CountRequest(path string) {
	m.requestsTotal.WithLabelValues(path).Inc()
}

// ObserveScan records the outcome of one completed prime scan.
func (m *Metrics) ObserveScan(seconds float64, primes int) {
	m.scanDuration.Observe(seconds)
	m.primesFound.Add(float64(primes))
}

// WritePrometheus serves the metrics exposition endpoint.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
