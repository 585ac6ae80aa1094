package toolbroker

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/credential"
	"github.com/openintent-io/openintent/ent/tooldefinition"
)

func TestApplyRESTAuth(t *testing.T) {
	newReq := func(t *testing.T) *http.Request {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, "https://api.example.com/v1/items?page=2", nil)
		require.NoError(t, err)
		return req
	}

	t.Run("api key defaults to a header", func(t *testing.T) {
		req := newReq(t)
		cred := &ent.Credential{AuthType: credential.AuthTypeAPIKey, Secret: "sk-1"}

		require.NoError(t, applyRESTAuth(req, cred))
		assert.Equal(t, "sk-1", req.Header.Get("X-API-Key"))
		assert.NotContains(t, req.URL.RawQuery, "sk-1")
	})

	t.Run("api key with query location lands in the query string", func(t *testing.T) {
		req := newReq(t)
		cred := &ent.Credential{
			AuthType: credential.AuthTypeAPIKey,
			Secret:   "sk-2",
			Metadata: map[string]any{"location": "query", "param_name": "appid"},
		}

		require.NoError(t, applyRESTAuth(req, cred))
		assert.Empty(t, req.Header.Get("X-API-Key"))
		assert.Equal(t, "sk-2", req.URL.Query().Get("appid"))
		// Pre-existing query parameters survive the injection.
		assert.Equal(t, "2", req.URL.Query().Get("page"))
	})

	t.Run("basic credential must split into user and password", func(t *testing.T) {
		req := newReq(t)
		cred := &ent.Credential{AuthType: credential.AuthTypeBasic, Secret: "nocolon"}
		assert.Error(t, applyRESTAuth(req, cred))

		cred.Secret = "user:pass"
		require.NoError(t, applyRESTAuth(req, cred))
		user, pass, ok := req.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "pass", pass)
	})
}

func TestBuildTarget_ParamMapping(t *testing.T) {
	def := &ent.ToolDefinition{
		Name:    "geocoder",
		Adapter: tooldefinition.AdapterRest,
		Config: map[string]any{
			"base_url": "https://geo.example.com",
			"param_mapping": map[string]any{
				"city":  map[string]any{"in": "query", "name": "q"},
				"limit": map[string]any{"in": "query"},
				"notes": map[string]any{"in": "body", "name": "annotations"},
			},
		},
	}

	target, body, err := buildTarget(def, InvokeRequest{
		Path: "/v1/search",
		Body: map[string]any{
			"city":    "Reykjavik",
			"limit":   5,
			"notes":   "unfiltered",
			"passthru": "stays",
		},
	})
	require.NoError(t, err)

	u := mustParseURL(t, target)
	assert.Equal(t, "/v1/search", u.Path)
	assert.Equal(t, "Reykjavik", u.Query().Get("q"))
	assert.Equal(t, "5", u.Query().Get("limit"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "unfiltered", doc["annotations"])
	assert.Equal(t, "stays", doc["passthru"])
	assert.NotContains(t, doc, "city")
	assert.NotContains(t, doc, "notes")
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestBuildTarget_WebhookEnvelope(t *testing.T) {
	def := &ent.ToolDefinition{
		Name:    "notifier",
		Adapter: tooldefinition.AdapterWebhook,
		Config:  map[string]any{"base_url": "https://hooks.example.com"},
	}

	_, body, err := buildTarget(def, InvokeRequest{
		Path: "/deliver",
		Body: map[string]any{"event": "ping"},
	})
	require.NoError(t, err)

	var envelope WebhookEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "notifier", envelope.ToolName)
	assert.Equal(t, "ping", envelope.Parameters["event"])
	assert.NotEmpty(t, envelope.Timestamp)
}
