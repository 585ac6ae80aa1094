package toolbroker

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintBodyLimit caps how much of the request body feeds the
// fingerprint.
const fingerprintBodyLimit = 2000

// Fingerprint derives a short stable identifier for a tool request so
// operators can correlate TOOL_CALL_STARTED and TOOL_CALL_COMPLETED with
// upstream logs without reproducing the request. First 16 hex characters
// of SHA-256 over "METHOD|URL|BODY" with the body capped.
func Fingerprint(method, url string, body []byte) string {
	if len(body) > fingerprintBodyLimit {
		body = body[:fingerprintBodyLimit]
	}
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte("|"))
	h.Write([]byte(url))
	h.Write([]byte("|"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
