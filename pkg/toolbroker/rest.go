package toolbroker

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/credential"
)

// applyRESTAuth injects the credential into an outbound request according
// to the credential's auth type. API keys go into a header or a query
// parameter per the credential's location metadata. Secrets only ever
// travel on this hop; results are sanitized before anything is logged or
// returned.
func applyRESTAuth(req *http.Request, cred *ent.Credential) error {
	switch cred.AuthType {
	case credential.AuthTypeAPIKey:
		if metaString(cred.Metadata, "location", "header") == "query" {
			q := req.URL.Query()
			q.Set(metaString(cred.Metadata, "param_name", "api_key"), cred.Secret)
			req.URL.RawQuery = q.Encode()
			break
		}
		header := metaString(cred.Metadata, "header_name", "X-API-Key")
		req.Header.Set(header, cred.Secret)
	case credential.AuthTypeBearer, credential.AuthTypeOauth2:
		req.Header.Set("Authorization", "Bearer "+cred.Secret)
	case credential.AuthTypeBasic:
		user, pass, ok := strings.Cut(cred.Secret, ":")
		if !ok {
			return fmt.Errorf("basic credential must be user:password")
		}
		req.SetBasicAuth(user, pass)
	case credential.AuthTypeWebhook:
		// Webhook credentials sign the body instead; see webhook.go.
	default:
		return fmt.Errorf("unsupported auth type %q", cred.AuthType)
	}
	return nil
}

func metaString(meta map[string]any, key, fallback string) string {
	if meta == nil {
		return fallback
	}
	if v, ok := meta[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func metaMap(meta map[string]any, key string) map[string]any {
	if meta == nil {
		return nil
	}
	m, _ := meta[key].(map[string]any)
	return m
}
