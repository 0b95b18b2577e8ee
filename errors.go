package hookverify

import "errors"

// Sentinel errors returned when constructing a Verifier.
var (
	// ErrInvalidLeeway is returned when a negative leeway is configured.
	ErrInvalidLeeway = errors.New("hookverify: leeway must not be negative")

	// ErrNilClock is returned when WithClock is given a nil function.
	ErrNilClock = errors.New("hookverify: clock is required")
)

// Reason identifies why a verification failed. Reasons are listed in the
// order the pipeline checks them; exactly one is reported per failure.
type Reason int

// Verification failure reasons.
const (
	ReasonHeaderMissing Reason = iota + 1
	ReasonHeaderMalformed
	ReasonTimestampMissing
	ReasonTimestampNotNumeric
	ReasonSignatureMissing
	ReasonTimestampOutOfWindow
	ReasonSignatureInvalid
)

var reasonMessages = map[Reason]string{
	ReasonHeaderMissing:        "Header is missing or empty",
	ReasonHeaderMalformed:      "Header cannot be parsed into timestamp and signature",
	ReasonTimestampMissing:     "Timestamp is missing or empty",
	ReasonTimestampNotNumeric:  "Timestamp is not a number",
	ReasonSignatureMissing:     "Signature is missing or empty",
	ReasonTimestampOutOfWindow: "Timestamp is not within allowed window",
	ReasonSignatureInvalid:     "Signature is not valid",
}

var reasonNames = map[Reason]string{
	ReasonHeaderMissing:        "header_missing",
	ReasonHeaderMalformed:      "header_malformed",
	ReasonTimestampMissing:     "timestamp_missing",
	ReasonTimestampNotNumeric:  "timestamp_not_numeric",
	ReasonSignatureMissing:     "signature_missing",
	ReasonTimestampOutOfWindow: "timestamp_out_of_window",
	ReasonSignatureInvalid:     "signature_invalid",
}

// String returns a stable snake_case name, suitable for metric labels.
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// Message returns the human-readable message for the reason.
func (r Reason) Message() string {
	return reasonMessages[r]
}

// VerificationError is the single error kind returned for every failed
// verification. Message is part of the public contract and does not change.
type VerificationError struct {
	Reason  Reason
	Message string
}

func newError(r Reason) *VerificationError {
	return &VerificationError{Reason: r, Message: r.Message()}
}

// Error returns the failure message.
func (e *VerificationError) Error() string {
	return e.Message
}

// Is reports whether target is a *VerificationError with the same Reason, so
// the package sentinels below work with errors.Is.
func (e *VerificationError) Is(target error) bool {
	var t *VerificationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == e.Reason
}

// Sentinels for matching a specific failure with errors.Is.
var (
	ErrHeaderMissing        error = newError(ReasonHeaderMissing)
	ErrHeaderMalformed      error = newError(ReasonHeaderMalformed)
	ErrTimestampMissing     error = newError(ReasonTimestampMissing)
	ErrTimestampNotNumeric  error = newError(ReasonTimestampNotNumeric)
	ErrSignatureMissing     error = newError(ReasonSignatureMissing)
	ErrTimestampOutOfWindow error = newError(ReasonTimestampOutOfWindow)
	ErrSignatureInvalid     error = newError(ReasonSignatureInvalid)
)
