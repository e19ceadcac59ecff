package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contact submission outcomes recorded by ObserveContact.
const (
	ContactAccepted = "accepted"
	ContactInvalid  = "invalid"
	ContactFailed   = "failed"
)

// Metrics holds the Prometheus collectors for the web front end. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	contactSubmissions  *prometheus.CounterVec
	templateErrors      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lms_web_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lms_web_http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lms_web_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"outcome"}, // accepted, invalid, failed
	)
	m.templateErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lms_web_template_errors_total",
			Help: "Template parse or execution failures",
		},
		[]string{"template"},
	)

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.contactSubmissions,
		m.templateErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry exposes the underlying registry (tests gather from it).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the Prometheus exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// ObserveContact records a contact form outcome.
func (m *Metrics) ObserveContact(outcome string) {
	if m == nil {
		return
	}
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveTemplateError records a template failure.
func (m *Metrics) ObserveTemplateError(name string) {
	if m == nil {
		return
	}
	m.templateErrors.WithLabelValues(name).Inc()
}
