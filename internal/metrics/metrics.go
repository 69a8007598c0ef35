package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passgen"

// Metrics groups the collectors exported by the service. Each instance owns
// its registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	generated       *prometheus.CounterVec
	generateErrors  *prometheus.CounterVec
	validations     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "passwords_generated_total",
				Help:      "Passwords generated, by enabled character classes.",
			},
			[]string{"classes"},
		),
		generateErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generate_errors_total",
				Help:      "Rejected or failed generation requests, by error kind.",
			},
			[]string{"kind"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "length_validations_total",
				Help:      "Length validations, by failed rule (\"none\" when valid).",
			},
			[]string{"rule"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.generated,
		m.generateErrors,
		m.validations,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) PasswordGenerated(classes string) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(classes).Inc()
}

func (m *Metrics) GenerateFailed(kind string) {
	if m == nil {
		return
	}
	m.generateErrors.WithLabelValues(kind).Inc()
}

// LengthValidated records a validation outcome; rule is empty when valid.
func (m *Metrics) LengthValidated(rule string) {
	if m == nil {
		return
	}
	if rule == "" {
		rule = "none"
	}
	m.validations.WithLabelValues(rule).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
