package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide HTTP metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	AuditEmitted    *prometheus.CounterVec
	AuditDropped    prometheus.Counter
}

// New creates and registers the HTTP metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers on reg; tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lsc_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lsc_http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		}, []string{"route", "method", "status"}),
		AuditEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lsc_audit_events_emitted_total",
			Help: "Audit events accepted by the publisher by category",
		}, []string{"category"}),
		AuditDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "lsc_audit_events_dropped_total",
			Help: "Audit events dropped because the async buffer was full or the store failed",
		}),
	}
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(route, method string, status int, start time.Time) {
	m.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// IncAuditEmitted satisfies the audit publisher's metrics hook.
func (m *Metrics) IncAuditEmitted(category string) {
	m.AuditEmitted.WithLabelValues(category).Inc()
}

func (m *Metrics) IncAuditDropped() {
	m.AuditDropped.Inc()
}
