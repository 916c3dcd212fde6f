package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers form generation sweeps and the form lifecycle.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SweepsTotal       *prometheus.CounterVec
	SweepDuration     prometheus.Histogram
	FormsGenerated    prometheus.Counter
	SweepFailures     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	ReconcileWarnings prometheus.Counter
}

// New registers every collector with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SweepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adoption_form_sweeps_total",
			Help: "Periodic form generation sweeps by outcome",
		}, []string{"outcome"}), // outcome: "ok", "partial", "failed", "skipped"

		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "adoption_form_sweep_duration_seconds",
			Help:    "Duration of one periodic form generation sweep",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		FormsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "adoption_forms_generated_total",
			Help: "Forms created by periodic sweeps",
		}),

		SweepFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "adoption_form_sweep_animal_failures_total",
			Help: "Animals whose form could not be generated during a sweep",
		}),

		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adoption_form_status_transitions_total",
			Help: "Applied form status updates by target status",
		}, []string{"status"}),

		ReconcileWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "adoption_reconcile_warnings_total",
			Help: "Animal reconciliations that failed after a committed form change",
		}),
	}
}

func (m *Metrics) ObserveSweep(outcome string, d time.Duration, created, failed int) {
	if m == nil {
		return
	}
	m.SweepsTotal.WithLabelValues(outcome).Inc()
	m.SweepDuration.Observe(d.Seconds())
	m.FormsGenerated.Add(float64(created))
	m.SweepFailures.Add(float64(failed))
}

func (m *Metrics) IncrementSweepSkipped() {
	if m != nil {
		m.SweepsTotal.WithLabelValues("skipped").Inc()
	}
}

func (m *Metrics) IncrementTransition(status string) {
	if m != nil {
		m.StatusTransitions.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncrementReconcileWarning() {
	if m != nil {
		m.ReconcileWarnings.Inc()
	}
}
