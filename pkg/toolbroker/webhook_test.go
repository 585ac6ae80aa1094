package toolbroker

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"intent.completed","intent_id":"abc"}`)

	t.Run("sign and verify round trip", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "https://hooks.example.com/oi", strings.NewReader(string(body)))
		require.NoError(t, err)

		signWebhook(req, "whsec_test", body)

		sig := req.Header.Get(SignatureHeader)
		require.NotEmpty(t, sig)
		assert.True(t, strings.HasPrefix(sig, "sha256="))
		assert.True(t, VerifyWebhookSignature("whsec_test", body, sig))
	})

	t.Run("tampered body fails verification", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "https://hooks.example.com/oi", nil)
		require.NoError(t, err)
		signWebhook(req, "whsec_test", body)

		tampered := []byte(`{"event":"intent.completed","intent_id":"xyz"}`)
		assert.False(t, VerifyWebhookSignature("whsec_test", tampered, req.Header.Get(SignatureHeader)))
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "https://hooks.example.com/oi", nil)
		require.NoError(t, err)
		signWebhook(req, "whsec_test", body)

		assert.False(t, VerifyWebhookSignature("whsec_other", body, req.Header.Get(SignatureHeader)))
	})
}
