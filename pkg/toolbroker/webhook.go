package toolbroker

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SignatureHeader carries the HMAC of the webhook body so receivers can
// verify the payload came from this broker.
const SignatureHeader = "X-OpenIntent-Signature"

// WebhookEnvelope is the body posted to webhook tools. Receivers verify
// the signature over exactly these bytes.
type WebhookEnvelope struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

func webhookBody(toolName string, params map[string]any) ([]byte, error) {
	raw, err := json.Marshal(WebhookEnvelope{
		ToolName:   toolName,
		Parameters: params,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal webhook envelope: %w", err)
	}
	return raw, nil
}

// signWebhook adds the HMAC-SHA256 body signature expected by webhook
// receivers.
func signWebhook(req *http.Request, secret string, body []byte) {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	req.Header.Set(SignatureHeader, "sha256="+hex.EncodeToString(mac.Sum(nil)))
}

// VerifyWebhookSignature checks a received signature against the body.
// Exported for webhook receivers built on this module.
func VerifyWebhookSignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
