// Package hookverify verifies HMAC-signed webhook deliveries.
//
// hookverify is a library, not a service. It performs no network I/O and keeps
// no state between calls. Given the URL that received a request, the raw body,
// the shared secret and the signature header, it confirms the delivery is
// authentic, unaltered and recent, or reports exactly one reason it is not.
//
// The signature header has the form:
//
//	t=<unix seconds>,s=<base64 HMAC-SHA256>
//
// and the signature covers "url,timestamp,body" joined with single commas.
//
// Quick start:
//
//	ok, err := hookverify.Verify(hookverify.Request{
//	    URL:    "https://example.com/webhook",
//	    Secret: secret,
//	    Header: r.Header.Get("Truepic-Signature"),
//	    Body:   string(rawBody),
//	})
//	if err != nil {
//	    var verr *hookverify.VerificationError
//	    if errors.As(err, &verr) {
//	        log.Printf("rejected: %s", verr.Message)
//	    }
//	    return
//	}
//
// Use New with options to configure the leeway, clock, logger, tracing and
// metrics.
package hookverify
