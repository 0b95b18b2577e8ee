package hookverify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xraph/hookverify/observability"
	"github.com/xraph/hookverify/signature"
	"go.opentelemetry.io/otel/trace"
)

// Request carries everything needed to verify one delivery. The caller owns
// it; the Verifier never mutates or retains it.
type Request struct {
	// URL is the full URL that received the request, exactly as registered
	// with the sender.
	URL string

	// Secret is the shared signing secret.
	Secret string

	// Header is the raw signature header value.
	Header string

	// Body is the raw, unparsed request body.
	Body string

	// LeewayMinutes overrides the verifier's leeway when non-zero. A
	// negative value rejects every timestamp.
	LeewayMinutes int
}

// Verifier checks signed webhook deliveries. It holds no per-request state
// and is safe for concurrent use.
type Verifier struct {
	config  Config
	logger  *slog.Logger
	now     func() time.Time
	metrics *observability.Metrics
	tracer  *observability.Tracer
}

// New creates a Verifier with the given options.
func New(opts ...Option) (*Verifier, error) {
	v := &Verifier{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if v.config.LeewayMinutes < 0 {
		return nil, ErrInvalidLeeway
	}
	return v, nil
}

// Verify checks req with the default configuration. It returns true only when
// the header parses, the timestamp is within the window and the signature
// matches; otherwise it returns a *VerificationError.
func Verify(req Request) (bool, error) {
	v := &Verifier{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	return v.Verify(context.Background(), req)
}

// Config returns the verifier configuration.
func (v *Verifier) Config() Config {
	return v.config
}

// Verify runs the verification pipeline for req:
//  1. Parse the signature header.
//  2. Check the timestamp against the leeway window.
//  3. Recompute and compare the signature.
//
// The first failing step ends the call; later steps never run.
func (v *Verifier) Verify(ctx context.Context, req Request) (bool, error) {
	leeway := v.config.LeewayMinutes
	if req.LeewayMinutes != 0 {
		leeway = req.LeewayMinutes
	}

	start := time.Now()
	var span trace.Span
	if v.tracer != nil {
		ctx, span = v.tracer.StartVerifySpan(ctx, leeway)
	}

	err := v.verify(req, leeway)

	reason := ""
	if err != nil {
		var verr *VerificationError
		if errors.As(err, &verr) {
			reason = verr.Reason.String()
		}
	}

	if v.tracer != nil {
		v.tracer.EndVerifySpan(span, reason)
	}
	if v.metrics != nil {
		v.metrics.RecordVerification(reason, time.Since(start).Seconds())
	}

	if err != nil {
		v.logger.DebugContext(ctx, "webhook verification failed", "reason", reason)
		return false, err
	}

	v.logger.DebugContext(ctx, "webhook verified")
	return true, nil
}

func (v *Verifier) verify(req Request, leeway int) error {
	h, err := ParseHeader(req.Header)
	if err != nil {
		return err
	}

	if err := ValidateTimestamp(h.Timestamp, leeway, v.now()); err != nil {
		return err
	}

	if !signature.Verify(req.URL, req.Secret, req.Body, h.Timestamp, h.Signature) {
		return newError(ReasonSignatureInvalid)
	}
	return nil
}
