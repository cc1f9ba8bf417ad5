// Package metrics exposes Prometheus metrics for the matching service.
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

const defaultNamespace = "quickcounsel"

// Login outcomes.
const (
	LoginSuccess = "success"
	LoginFailed  = "failed"
)

type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry
	goCollector      bool

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	ratings       prometheus.Counter
	casesAdded    prometheus.Counter
}

// NewManager creates a Manager on a private registry unless WithRegistry
// supplies one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		histogramBuckets: prometheus.DefBuckets,
		goCollector:      true,
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

	if m.goCollector {
		m.registry.MustRegister(collectors.NewGoCollector())
	}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.registrations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "registrations_total",
			Help:      "Total number of successful registrations by role",
		},
		[]string{"role"},
	)

	m.logins = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)

	m.ratings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "ratings_total",
		Help:      "Total number of ratings stored, including overwrites",
	})

	m.casesAdded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "cases_added_total",
		Help:      "Total number of portfolio cases added",
	})
}

// ObserveHTTPRequest records one finished request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Manager) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

func (m *Manager) RecordRegistration(role string) {
	if m != nil {
		m.registrations.WithLabelValues(role).Inc()
	}
}

func (m *Manager) RecordLogin(outcome string) {
	if m != nil {
		m.logins.WithLabelValues(outcome).Inc()
	}
}

func (m *Manager) RecordRating() {
	if m != nil {
		m.ratings.Inc()
	}
}

func (m *Manager) RecordCaseAdded() {
	if m != nil {
		m.casesAdded.Inc()
	}
}

// Registry returns the registry backing the Manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
