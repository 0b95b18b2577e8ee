package observability

import (
	"testing"

	gu "github.com/xraph/go-utils/metrics"
)

// labelRecorder keeps the label sets passed to WithLabels, which the
// reference collector does not retain.
type labelRecorder struct {
	gu.Counter
	labels []map[string]string
}

func (c *labelRecorder) WithLabels(labels map[string]string) gu.Counter {
	c.labels = append(c.labels, labels)
	return c.Counter.WithLabels(labels)
}

type observeRecorder struct {
	gu.Histogram
	observed []float64
}

func (h *observeRecorder) Observe(value float64) {
	h.observed = append(h.observed, value)
	h.Histogram.Observe(value)
}

func TestNewMetrics_Registers(t *testing.T) {
	m := NewMetrics(gu.NewMetricsCollector("hookverify_test"))

	if m.VerificationsTotal == nil {
		t.Fatal("VerificationsTotal should not be nil")
	}
	if m.RejectionsTotal == nil {
		t.Fatal("RejectionsTotal should not be nil")
	}
	if m.VerifyLatency == nil {
		t.Fatal("VerifyLatency should not be nil")
	}
}

func TestRecordVerification(t *testing.T) {
	m := NewMetrics(gu.NewMetricsCollector("hookverify_test"))
	rejections := &labelRecorder{Counter: m.RejectionsTotal}
	latency := &observeRecorder{Histogram: m.VerifyLatency}
	m.RejectionsTotal = rejections
	m.VerifyLatency = latency

	m.RecordVerification("", 0.001)
	m.RecordVerification("signature_invalid", 0.002)
	m.RecordVerification("timestamp_out_of_window", 0.003)

	if got := m.VerificationsTotal.Value(); got != 3 {
		t.Fatalf("expected 3 verifications, got %v", got)
	}

	if len(rejections.labels) != 2 {
		t.Fatalf("expected 2 labelled rejections, got %d", len(rejections.labels))
	}
	if rejections.labels[0]["reason"] != "signature_invalid" {
		t.Errorf("unexpected first reason %q", rejections.labels[0]["reason"])
	}
	if rejections.labels[1]["reason"] != "timestamp_out_of_window" {
		t.Errorf("unexpected second reason %q", rejections.labels[1]["reason"])
	}

	if len(latency.observed) != 3 {
		t.Fatalf("expected 3 latency observations, got %d", len(latency.observed))
	}
	if latency.observed[1] != 0.002 {
		t.Errorf("expected latency 0.002, got %v", latency.observed[1])
	}
}
