package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the center workflows.
// Tracks workflow outcomes, rollback failures and application code attempts.
type Metrics struct {
	WorkflowsTotal      *prometheus.CounterVec
	WorkflowDuration    *prometheus.HistogramVec
	RollbackFailures    *prometheus.CounterVec
	DanglingCredentials prometheus.Counter
	CodeAttempts        *prometheus.CounterVec
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		WorkflowsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lsc_workflows_total",
			Help: "Workflow executions by workflow and outcome (ok or error code)",
		}, []string{"workflow", "outcome"}),
		WorkflowDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lsc_workflow_duration_seconds",
			Help:    "Duration of provisioning and lifecycle workflows",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"workflow"}),
		RollbackFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lsc_rollback_failures_total",
			Help: "Compensations that failed and need out-of-band reconciliation",
		}, []string{"saga", "step"}),
		DanglingCredentials: factory.NewCounter(prometheus.CounterOpts{
			Name: "lsc_dangling_credentials_total",
			Help: "Credentials left behind after their profile was deleted",
		}),
		CodeAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lsc_application_code_attempts_total",
			Help: "Application code draws by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveWorkflow records one workflow run. outcome is "ok" or the error code.
// Call with time.Now() at the start of the workflow.
func (m *Metrics) ObserveWorkflow(workflow, outcome string, start time.Time) {
	m.WorkflowsTotal.WithLabelValues(workflow, outcome).Inc()
	m.WorkflowDuration.WithLabelValues(workflow).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncRollbackFailure(saga, step string) {
	m.RollbackFailures.WithLabelValues(saga, step).Inc()
}

func (m *Metrics) IncDanglingCredential() {
	m.DanglingCredentials.Inc()
}

// IncCodeAttempt satisfies appcode.Observer.
func (m *Metrics) IncCodeAttempt(outcome string) {
	m.CodeAttempts.WithLabelValues(outcome).Inc()
}
