package formstate

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/indico/fieldkit/pkg/validate"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, label string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(label).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetricsRecordOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	f := New(WithMetrics(m))
	f.Register("name", "", validate.Required(""))

	_ = f.Submit(context.Background(), func(context.Context, map[string]any) error { return nil })
	_ = f.Change("name", "ok")
	_ = f.Submit(context.Background(), func(context.Context, map[string]any) error {
		return SubmitErrors{"name": "taken"}
	})
	_ = f.Submit(context.Background(), func(context.Context, map[string]any) error { return nil })

	if got := counterValue(t, m.submissions, OutcomeInvalid); got != 1 {
		t.Errorf("invalid = %v, want 1", got)
	}
	if got := counterValue(t, m.submissions, OutcomeRejected); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
	if got := counterValue(t, m.submissions, OutcomeSucceeded); got != 1 {
		t.Errorf("succeeded = %v, want 1", got)
	}
	if got := counterValue(t, m.validationFailures, "name"); got != 1 {
		t.Errorf("validation failures = %v, want 1", got)
	}

	m.ObserveShownError("submit")
	if got := counterValue(t, m.shownErrors, "submit"); got != 1 {
		t.Errorf("shown errors = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, fam := range families {
		if fam.GetName() == "test_form_submit_duration_seconds" {
			found = true
			if c := fam.GetMetric()[0].GetHistogram().GetSampleCount(); c != 2 {
				t.Errorf("duration samples = %d, want 2", c)
			}
		}
	}
	if !found {
		t.Error("submit duration histogram not registered")
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSubmission(OutcomeSucceeded)
	m.ObserveShownError("validation")
	m.ObserveValidationFailure("x")
}
