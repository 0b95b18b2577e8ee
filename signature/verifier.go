package signature

import (
	"crypto/hmac"
	"encoding/base64"
	"strings"
)

// Verify checks whether the given signature matches the expected HMAC-SHA256
// signature for url, timestamp and body.
func (s *Signer) Verify(url, secret, body string, timestamp int64, sig string) bool {
	return Verify(url, secret, body, timestamp, sig)
}

// Verify checks whether sig matches the expected HMAC-SHA256 signature for
// url, timestamp and body. The comparison runs in constant time with respect
// to the digest contents. A signature that is not valid base64 or decodes to
// the wrong length never matches.
func Verify(url, secret, body string, timestamp int64, sig string) bool {
	received, ok := decode(sig)
	if !ok {
		return false
	}
	return hmac.Equal(digest(url, secret, body, timestamp), received)
}

// decode accepts standard base64 with or without trailing padding.
func decode(sig string) ([]byte, bool) {
	b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(sig, "="))
	if err != nil {
		return nil, false
	}
	return b, true
}
