package signature_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/xraph/hookverify/signature"
)

const (
	testURL    = "http://localhost:3001/webhook"
	testSecret = "secret"
	testBody   = `{"type":"captures.created","data":{"id":"dd4b8e37"}}`
)

func TestSigningStringLayout(t *testing.T) {
	got := signature.SigningString(testURL, 1698259719, testBody)
	want := testURL + ",1698259719," + testBody
	if got != want {
		t.Errorf("SigningString() = %q, want %q", got, want)
	}
}

func TestSigningStringTimestampFormatting(t *testing.T) {
	cases := map[int64]string{
		0:          "u,0,b",
		7:          "u,7,b",
		-42:        "u,-42,b",
		1698259719: "u,1698259719,b",
	}
	for ts, want := range cases {
		if got := signature.SigningString("u", ts, "b"); got != want {
			t.Errorf("SigningString(ts=%d) = %q, want %q", ts, got, want)
		}
	}
}

func TestSignKnownVector(t *testing.T) {
	signer := signature.NewSigner()
	timestamp := int64(1700000000)

	got := signer.Sign(testURL, testSecret, testBody, timestamp)

	// Compute expected HMAC-SHA256 independently.
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(testURL + ",1700000000," + testBody))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got != expected {
		t.Errorf("Sign() = %q, want %q", got, expected)
	}
}

func TestSignatureFormat(t *testing.T) {
	sig := signature.Sign("u", "secret", "b", 123)

	// 32-byte digest: 44 base64 characters ending in a single pad.
	if len(sig) != 44 {
		t.Errorf("expected signature length 44, got %d", len(sig))
	}
	if !strings.HasSuffix(sig, "=") || strings.HasSuffix(sig, "==") {
		t.Errorf("expected exactly one padding character, got %q", sig)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := signature.NewSigner()
	timestamp := int64(1700000001)

	sig := signer.Sign(testURL, testSecret, testBody, timestamp)
	if !signer.Verify(testURL, testSecret, testBody, timestamp, sig) {
		t.Error("Verify() returned false for valid signature")
	}
}

func TestVerifyUnpaddedSignature(t *testing.T) {
	timestamp := int64(1700000001)
	sig := strings.TrimRight(signature.Sign(testURL, testSecret, testBody, timestamp), "=")

	if !signature.Verify(testURL, testSecret, testBody, timestamp, sig) {
		t.Error("Verify() returned false for unpadded signature")
	}
}

func TestVerifyTamperedBody(t *testing.T) {
	timestamp := int64(1700000002)
	sig := signature.Sign(testURL, testSecret, testBody, timestamp)

	tampered := strings.Replace(testBody, "captures", "Captures", 1)
	if signature.Verify(testURL, testSecret, tampered, timestamp, sig) {
		t.Error("Verify() returned true for tampered body")
	}
}

func TestVerifyTamperedURL(t *testing.T) {
	timestamp := int64(1700000003)
	sig := signature.Sign(testURL, testSecret, testBody, timestamp)

	if signature.Verify("http://bad/webhook", testSecret, testBody, timestamp, sig) {
		t.Error("Verify() returned true for wrong url")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	timestamp := int64(1700000004)
	sig := signature.Sign(testURL, testSecret, testBody, timestamp)

	if signature.Verify(testURL, "bad", testBody, timestamp, sig) {
		t.Error("Verify() returned true for wrong secret")
	}
}

func TestVerifyWrongTimestamp(t *testing.T) {
	timestamp := int64(1700000005)
	sig := signature.Sign(testURL, testSecret, testBody, timestamp)

	if signature.Verify(testURL, testSecret, testBody, timestamp+1, sig) {
		t.Error("Verify() returned true for wrong timestamp")
	}
}

func TestVerifyInvalidBase64(t *testing.T) {
	if signature.Verify(testURL, testSecret, testBody, 1, "not*base64!") {
		t.Error("Verify() returned true for undecodable signature")
	}
}

func TestVerifyShortSignature(t *testing.T) {
	// Valid base64 that decodes to fewer bytes than a SHA-256 digest.
	if signature.Verify(testURL, testSecret, testBody, 1, "dGVzdA==") {
		t.Error("Verify() returned true for short signature")
	}
}

func TestVerifyLongSignature(t *testing.T) {
	sig := signature.Sign(testURL, testSecret, testBody, 1)
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		t.Fatal(err)
	}
	long := base64.StdEncoding.EncodeToString(append(raw, 0x00))

	if signature.Verify(testURL, testSecret, testBody, 1, long) {
		t.Error("Verify() returned true for signature with extra trailing byte")
	}
}

func TestFormatHeader(t *testing.T) {
	got := signature.FormatHeader(1698259719, "abc=")
	if got != "t=1698259719,s=abc=" {
		t.Errorf("FormatHeader() = %q", got)
	}
}
