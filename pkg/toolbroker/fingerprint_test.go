package toolbroker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	t.Run("is 16 hex characters", func(t *testing.T) {
		fp := Fingerprint("POST", "https://api.example.com/v1/search", []byte(`{"q":"x"}`))
		assert.Len(t, fp, 16)
		assert.Regexp(t, "^[0-9a-f]{16}$", fp)
	})

	t.Run("deterministic for identical requests", func(t *testing.T) {
		a := Fingerprint("GET", "https://api.example.com/v1", nil)
		b := Fingerprint("GET", "https://api.example.com/v1", nil)
		assert.Equal(t, a, b)
	})

	t.Run("differs across method, url and body", func(t *testing.T) {
		base := Fingerprint("GET", "https://api.example.com/v1", []byte("a"))
		assert.NotEqual(t, base, Fingerprint("POST", "https://api.example.com/v1", []byte("a")))
		assert.NotEqual(t, base, Fingerprint("GET", "https://api.example.com/v2", []byte("a")))
		assert.NotEqual(t, base, Fingerprint("GET", "https://api.example.com/v1", []byte("b")))
	})

	t.Run("only the body prefix feeds the hash", func(t *testing.T) {
		prefix := bytes.Repeat([]byte("x"), fingerprintBodyLimit)
		a := Fingerprint("POST", "https://api.example.com", append(prefix[:len(prefix):len(prefix)], "tail-one"...))
		b := Fingerprint("POST", "https://api.example.com", append(prefix[:len(prefix):len(prefix)], "tail-two"...))
		assert.Equal(t, a, b)
	})
}
