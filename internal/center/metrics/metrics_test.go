package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.ObserveWorkflow("provision_center", "ok", time.Now())
	m.ObserveWorkflow("provision_center", "store_error", time.Now())
	m.IncRollbackFailure("provision_center", "create_center")
	m.IncDanglingCredential()
	m.IncCodeAttempt("exists")
	m.IncCodeAttempt("exists")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WorkflowsTotal.WithLabelValues("provision_center", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RollbackFailures.WithLabelValues("provision_center", "create_center")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DanglingCredentials))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CodeAttempts.WithLabelValues("exists")))
}
