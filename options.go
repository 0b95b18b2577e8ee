package hookverify

import (
	"log/slog"
	"time"

	"github.com/xraph/hookverify/observability"
)

// Option configures a Verifier.
type Option func(*Verifier) error

// WithConfig replaces the verifier configuration.
func WithConfig(cfg Config) Option {
	return func(v *Verifier) error {
		v.config = cfg
		return nil
	}
}

// WithLeeway sets the default leeway, in minutes, used when a Request does
// not carry its own. Zero is a valid, strict setting.
func WithLeeway(minutes int) Option {
	return func(v *Verifier) error {
		v.config.LeewayMinutes = minutes
		return nil
	}
}

// WithLogger sets the structured logger for the Verifier.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) error {
		v.logger = logger
		return nil
	}
}

// WithClock overrides the time source sampled once per verification.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) error {
		if now == nil {
			return ErrNilClock
		}
		v.now = now
		return nil
	}
}

// WithMetrics enables metric recording for verification outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(v *Verifier) error {
		v.metrics = m
		return nil
	}
}

// WithTracer enables OpenTelemetry spans around each verification.
func WithTracer(t *observability.Tracer) Option {
	return func(v *Verifier) error {
		v.tracer = t
		return nil
	}
}
