// Package signature implements the HMAC-SHA256 signing scheme used by signed
// webhook deliveries: a base64 digest over "url,timestamp,body".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
)

// Signer computes HMAC-SHA256 signatures for webhook payloads.
type Signer struct{}

// NewSigner returns a new Signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Sign generates the base64-encoded HMAC-SHA256 signature of the signing
// string for url, timestamp and body.
func (s *Signer) Sign(url, secret, body string, timestamp int64) string {
	return Sign(url, secret, body, timestamp)
}

// SigningString joins url, timestamp and body with single commas. The
// timestamp is rendered as a plain base-10 integer; signer and verifier must
// agree on these bytes exactly.
func SigningString(url string, timestamp int64, body string) string {
	return url + "," + strconv.FormatInt(timestamp, 10) + "," + body
}

// Sign generates the base64-encoded HMAC-SHA256 signature of the signing
// string for url, timestamp and body.
func Sign(url, secret, body string, timestamp int64) string {
	return base64.StdEncoding.EncodeToString(digest(url, secret, body, timestamp))
}

// FormatHeader renders a signature header in the "t=<seconds>,s=<base64>" form.
func FormatHeader(timestamp int64, sig string) string {
	return "t=" + strconv.FormatInt(timestamp, 10) + ",s=" + sig
}

func digest(url, secret, body string, timestamp int64) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(SigningString(url, timestamp, body)))
	return mac.Sum(nil)
}
