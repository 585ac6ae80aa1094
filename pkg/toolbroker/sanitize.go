package toolbroker

import (
	"regexp"
	"strconv"
)

const (
	// Redacted replaces secret-bearing values in tool results.
	Redacted = "[REDACTED]"

	maxSanitizeDepth = 10
	maxStringLen     = 10000
	maxListLen       = 100
)

// secretKeyPattern matches field names that carry credentials.
var secretKeyPattern = regexp.MustCompile(
	`(?i)(api[_-]?key|secret|token|passw(or)?d|authorization|credential|private[_-]?key|access[_-]?key|client[_-]?secret|bearer)`)

// secretValuePatterns match values that look like credentials regardless
// of their field name.
var secretValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{8,}`),                       // provider API keys
	regexp.MustCompile(`\bBearer\s+[A-Za-z0-9._~+/-]{16,}=*`),          // bearer tokens
	regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{20,}\.[A-Za-z0-9._-]{20,}`), // JWTs
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),           // PEM keys
	regexp.MustCompile(`\b[A-Za-z0-9+/_-]{40,}={0,2}`),                 // long opaque base64-like blobs
}

// Sanitize returns a deep copy of a tool result document with
// secret-looking fields redacted, long strings truncated, and oversized
// lists capped. The input is never mutated; sanitized output is what
// lands in the event log.
func Sanitize(doc map[string]any) map[string]any {
	out, _ := sanitizeValue(doc, 0).(map[string]any)
	return out
}

func sanitizeValue(v any, depth int) any {
	if depth > maxSanitizeDepth {
		return "[TRUNCATED: depth]"
	}
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if secretKeyPattern.MatchString(k) {
				out[k] = Redacted
				continue
			}
			out[k] = sanitizeValue(inner, depth+1)
		}
		return out
	case []any:
		n := len(val)
		truncated := false
		if n > maxListLen {
			n = maxListLen
			truncated = true
		}
		out := make([]any, 0, n+1)
		for _, inner := range val[:n] {
			out = append(out, sanitizeValue(inner, depth+1))
		}
		if truncated {
			out = append(out, "[TRUNCATED: "+strconv.Itoa(len(val)-maxListLen)+" more items]")
		}
		return out
	case string:
		return sanitizeString(val)
	default:
		return v
	}
}

func sanitizeString(s string) string {
	for _, p := range secretValuePatterns {
		s = p.ReplaceAllString(s, Redacted)
	}
	if len(s) > maxStringLen {
		s = s[:maxStringLen] + "... [TRUNCATED]"
	}
	return s
}
