// Package metrics exposes the Prometheus instruments of the sweets API.
//
// Every Metrics value owns its registry, so tests and multiple servers in
// one process never collide on the global default registerer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "sweets"
	subsystem = "api"
)

// Mutation operations recorded by RecordSweetMutation.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Metrics holds the registered collectors. A nil *Metrics is a valid,
// disabled instance: every method is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	sweetMutations      *prometheus.CounterVec
}

// New creates a registry with Go runtime and process collectors plus the
// API instruments.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(registry)
	m := &Metrics{registry: registry}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.sweetMutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sweet_mutations_total",
			Help:      "Total number of persisted sweet mutations by operation",
		},
		[]string{"operation"},
	)

	return m
}

// ObserveHTTPRequest records one finished request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

// RecordSweetMutation counts a successful create, update or delete.
func (m *Metrics) RecordSweetMutation(operation string) {
	if m == nil {
		return
	}
	m.sweetMutations.WithLabelValues(operation).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
