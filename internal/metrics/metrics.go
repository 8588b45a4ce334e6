// Package metrics records calculation counts and latencies with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"event-economics/internal/errors"
)

// Outcome labels
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid_input"
	OutcomeError   = "error"
)

// Metrics holds the calculator collectors
type Metrics struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	quoted       prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_economics",
			Name:      "calculations_total",
			Help:      "Calculations performed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "event_economics",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent serving a calculation request.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		quoted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_economics",
			Name:      "quoted_cents_total",
			Help:      "Sum of grand totals quoted for checkout, in cents.",
		}),
	}
	reg.MustRegister(m.calculations, m.duration, m.quoted)
	return m
}

// Observe records one calculation
func (m *Metrics) Observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(operation, Outcome(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Quoted adds a checkout grand total
func (m *Metrics) Quoted(cents int64) {
	if m == nil || cents <= 0 {
		return
	}
	m.quoted.Add(float64(cents))
}

// Outcome classifies err for the outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.IsInvalidInput(err):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
