package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "navigatorx"

// Metric. prometheus collectors for the http api and weighting composition
type Metric struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	compositions     *prometheus.CounterVec
	appliedModifiers *prometheus.CounterVec
	skippedModifiers *prometheus.CounterVec
	configErrors     prometheus.Counter
	settledNodes     prometheus.Histogram
}

func NewMetric() *Metric {
	reg := prometheus.NewRegistry()
	m := &Metric{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "number of http requests by route and status code",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "http request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		compositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weighting_compositions_total",
			Help:      "composed weightings by traversal mode",
		}, []string{"traversal_mode"}),
		appliedModifiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weighting_modifiers_applied_total",
			Help:      "modifiers added to a composite weighting",
		}, []string{"modifier"}),
		skippedModifiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weighting_modifiers_skipped_total",
			Help:      "requested modifier names with no registered constructor",
		}, []string{"modifier"}),
		configErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weighting_configuration_errors_total",
			Help:      "requests rejected with a configuration error",
		}),
		settledNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_settled_nodes",
			Help:      "settled nodes per shortest path search",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
	}

	reg.MustRegister(
		m.requests,
		m.requestDuration,
		m.compositions,
		m.appliedModifiers,
		m.skippedModifiers,
		m.configErrors,
		m.settledNodes,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metric) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metric) ObserveComposition(traversalMode string, applied, skipped []string) {
	m.compositions.WithLabelValues(traversalMode).Inc()
	for _, name := range applied {
		m.appliedModifiers.WithLabelValues(name).Inc()
	}
	for _, name := range skipped {
		m.skippedModifiers.WithLabelValues(name).Inc()
	}
}

func (m *Metric) IncConfigurationError() {
	m.configErrors.Inc()
}

func (m *Metric) ObserveSettledNodes(n int) {
	m.settledNodes.Observe(float64(n))
}

func (m *Metric) Registry() *prometheus.Registry {
	return m.registry
}

// Handler. exposition endpoint for /metrics
func (m *Metric) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
