package observability

import (
	gu "github.com/xraph/go-utils/metrics"
)

// Metrics holds metric instruments for hookverify, backed by any go-utils
// MetricFactory (e.g. a forge-managed metrics system via fapp.Metrics()).
type Metrics struct {
	// VerificationsTotal counts every verification, verified or rejected.
	VerificationsTotal gu.Counter
	// RejectionsTotal counts rejected verifications, labelled by reason.
	RejectionsTotal gu.Counter
	VerifyLatency   gu.Histogram
}

// NewMetrics creates verification metric instruments using the supplied factory.
// Pass metrics.NewMetricsCollector() for standalone usage.
func NewMetrics(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		VerificationsTotal: factory.Counter("hookverify_verifications_total"),
		RejectionsTotal:    factory.Counter("hookverify_rejections_total"),
		VerifyLatency:      factory.Histogram("hookverify_verify_latency_seconds"),
	}
}

// RecordVerification records one verification with its failure reason ("" on
// success) and latency.
func (m *Metrics) RecordVerification(reason string, latencySeconds float64) {
	m.VerificationsTotal.Inc()
	if reason != "" {
		m.RejectionsTotal.WithLabels(map[string]string{"reason": reason}).Inc()
	}
	m.VerifyLatency.Observe(latencySeconds)
}
