package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"event-economics/internal/errors"
)

func TestObserveCountsByOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())
	start := time.Now()

	m.Observe("price", start, nil)
	m.Observe("price", start, nil)
	m.Observe("price", start, errors.InvalidInput("platform_fee_rate", "out of range"))
	m.Observe("staffing", start, fmt.Errorf("boom"))

	if got := testutil.ToFloat64(m.calculations.WithLabelValues("price", OutcomeOK)); got != 2 {
		t.Errorf("price ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.calculations.WithLabelValues("price", OutcomeInvalid)); got != 1 {
		t.Errorf("price invalid = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.calculations.WithLabelValues("staffing", OutcomeError)); got != 1 {
		t.Errorf("staffing error = %v, want 1", got)
	}
}

func TestQuoted(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Quoted(82500)
	m.Quoted(0)
	if got := testutil.ToFloat64(m.quoted); got != 82500 {
		t.Errorf("quoted = %v, want 82500", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe("price", time.Now(), nil)
	m.Quoted(100)
}
