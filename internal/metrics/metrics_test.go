package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSweep(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveSweep("partial", 2*time.Second, 3, 1)
	m.IncrementSweepSkipped()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepsTotal.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepsTotal.WithLabelValues("skipped")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.FormsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepFailures))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSweep("ok", time.Second, 1, 0)
		m.IncrementTransition("sent")
		m.IncrementReconcileWarning()
		m.IncrementSweepSkipped()
	})
}
