package hookverify

import (
	"strconv"
	"strings"
)

// Header is a decoded signature header.
//
// The wire form is:
//
//	t=1634066973,s=6FBEiVZ8EO79dk5XllfnG18b83ZvLt2kdxcE8FJ/BwU=
//
// where t is the send time in seconds since the epoch and s is the
// base64-encoded HMAC-SHA256 signature of the request.
type Header struct {
	Timestamp int64
	Signature string
}

// ParseHeader decodes a signature header. Checks run in a fixed order and the
// first failure is returned as a *VerificationError. Only base-10 integer
// timestamps are accepted; fractions and exponents are not a number.
func ParseHeader(header string) (Header, error) {
	if header == "" {
		return Header{}, newError(ReasonHeaderMissing)
	}

	tsPart, sigPart, ok := strings.Cut(header, ",")
	if !ok || tsPart == "" || sigPart == "" {
		return Header{}, newError(ReasonHeaderMalformed)
	}

	key, value, _ := strings.Cut(tsPart, "=")
	if key != "t" || value == "" {
		return Header{}, newError(ReasonTimestampMissing)
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return Header{}, newError(ReasonTimestampNotNumeric)
	}

	// Only the first '=' separates the key; base64 padding stays in the value.
	key, sig, _ := strings.Cut(sigPart, "=")
	if key != "s" || sig == "" {
		return Header{}, newError(ReasonSignatureMissing)
	}

	return Header{Timestamp: ts, Signature: sig}, nil
}
