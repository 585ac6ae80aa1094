package toolbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	"github.com/openintent-io/openintent/pkg/services"
	testdb "github.com/openintent-io/openintent/test/database"
)

// leakedBlob stands in for an opaque credential a misbehaving upstream
// could echo into an error message.
const leakedBlob = "QWxhZGRpbjpvcGVuc2VzYW1lb3BhcXVlYmxvYjEyMzQ1Njc4OTA="

// leakyTransport fails every request with an error that embeds the blob.
type leakyTransport struct{}

func (leakyTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("upstream rejected credential %s", leakedBlob)
}

// brokerHarness wires real services against a test database and a local
// upstream. AllowPrivateHosts is set because httptest listens on loopback.
type brokerHarness struct {
	tools   *services.ToolService
	events  *services.EventService
	intents *services.IntentService
	broker  *Broker
	server  *httptest.Server
}

func newBrokerHarness(t *testing.T) *brokerHarness {
	t.Helper()
	db := testdb.NewTestClient(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"api_key": r.Header.Get("X-API-Key"),
			"echoed":  "key was " + r.Header.Get("X-API-Key"),
			"note":    "hello",
		})
	})
	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		fmt.Fprint(w, `{"ok":true}`)
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", (1<<20)+16)))
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		fmt.Fprint(w, `{"access_token":"fresh-token"}`)
	})
	mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	})
	mux.HandleFunc("/hook", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !VerifyWebhookSignature("whsec_test", body, r.Header.Get(SignatureHeader)) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var envelope WebhookEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Timestamp == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"received":  true,
			"tool_name": envelope.ToolName,
			"event":     envelope.Parameters["event"],
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	toolSvc := services.NewToolService(db.Client)
	eventSvc := services.NewEventService(db.Client, nil)
	intentSvc := services.NewIntentService(db.Client, nil)

	return &brokerHarness{
		tools:   toolSvc,
		events:  eventSvc,
		intents: intentSvc,
		broker:  NewBroker(toolSvc, eventSvc, Options{AllowPrivateHosts: true}),
		server:  server,
	}
}

func (h *brokerHarness) newIntent(t *testing.T) string {
	t.Helper()
	in, err := h.intents.CreateIntent(context.Background(), "test-agent",
		models.CreateIntentRequest{Title: "broker test intent"})
	require.NoError(t, err)
	return in.ID
}

// registerRESTTool defines a REST tool with an api_key credential and a
// grant for agentID, returning the credential ID.
func (h *brokerHarness) registerRESTTool(t *testing.T, name, agentID, secret string, mod func(*services.CreateGrantRequest)) string {
	t.Helper()
	ctx := context.Background()

	_, err := h.tools.RegisterTool(ctx, services.RegisterToolRequest{
		Name:    name,
		Adapter: "rest",
		Config:  map[string]any{"base_url": h.server.URL, "method": "GET"},
	})
	require.NoError(t, err)

	cred, err := h.tools.CreateCredential(ctx, services.CreateCredentialRequest{
		AuthType: "api_key",
		Secret:   secret,
	})
	require.NoError(t, err)

	grantReq := services.CreateGrantRequest{
		AgentID:      agentID,
		ToolName:     name,
		CredentialID: cred.ID,
	}
	if mod != nil {
		mod(&grantReq)
	}
	_, err = h.tools.CreateGrant(ctx, grantReq)
	require.NoError(t, err)
	return cred.ID
}

func TestBroker_Invoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	h := newBrokerHarness(t)
	ctx := context.Background()

	t.Run("success with secret isolation", func(t *testing.T) {
		secret := "sk-livekey1234567890"
		h.registerRESTTool(t, "echo-tool", "agent-echo", secret, nil)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-echo", InvokeRequest{
			Tool:     "echo-tool",
			IntentID: intentID,
			Path:     "/echo",
		})
		require.NoError(t, err)

		assert.Equal(t, StatusSuccess, result.Status)
		assert.Equal(t, http.StatusOK, result.HTTPStatus)
		assert.Len(t, result.RequestFingerprint, 16)

		// The upstream saw the real key but the caller never does.
		assert.Equal(t, Redacted, result.Result["api_key"])
		assert.NotContains(t, result.Result["echoed"], secret)
		assert.Equal(t, "hello", result.Result["note"])

		// Both lifecycle events landed, and the completed payload is
		// sanitized too.
		page, err := h.events.ListEvents(ctx, intentID, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Events, 2)
		assert.Equal(t, events.EventTypeToolCallStarted, page.Events[0].EventType)
		assert.Equal(t, events.EventTypeToolCallCompleted, page.Events[1].EventType)

		raw, err := json.Marshal(page.Events[1].Payload)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), secret)
	})

	t.Run("no grant is denied", func(t *testing.T) {
		h.registerRESTTool(t, "locked-tool", "agent-with", "sk-x", nil)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-without", InvokeRequest{
			Tool:     "locked-tool",
			IntentID: intentID,
			Path:     "/echo",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusDenied, result.Status)
		assert.Equal(t, KindGrantDenied, result.ErrorKind)
	})

	t.Run("expired grant is denied", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		h.registerRESTTool(t, "expired-tool", "agent-expired", "sk-x",
			func(g *services.CreateGrantRequest) { g.ExpiresAt = &past })
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-expired", InvokeRequest{
			Tool:     "expired-tool",
			IntentID: intentID,
			Path:     "/echo",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusDenied, result.Status)
		assert.Equal(t, KindGrantDenied, result.ErrorKind)
		assert.Contains(t, result.Error, "expired")
	})

	t.Run("rate limit denies the overflow call", func(t *testing.T) {
		h.registerRESTTool(t, "limited-tool", "agent-limited", "sk-x",
			func(g *services.CreateGrantRequest) {
				g.RateLimit = 1
				g.RateWindowSeconds = 60
			})
		intentID := h.newIntent(t)

		first, err := h.broker.Invoke(ctx, "agent-limited", InvokeRequest{
			Tool: "limited-tool", IntentID: intentID, Path: "/echo",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, first.Status)

		second, err := h.broker.Invoke(ctx, "agent-limited", InvokeRequest{
			Tool: "limited-tool", IntentID: intentID, Path: "/echo",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusDenied, second.Status)
		assert.Equal(t, KindRateLimited, second.ErrorKind)
	})

	t.Run("loopback target is blocked without AllowPrivateHosts", func(t *testing.T) {
		h.registerRESTTool(t, "private-tool", "agent-private", "sk-x", nil)
		intentID := h.newIntent(t)

		strict := NewBroker(h.tools, h.events, Options{})
		result, err := strict.Invoke(ctx, "agent-private", InvokeRequest{
			Tool: "private-tool", IntentID: intentID, Path: "/echo",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusDenied, result.Status)
		assert.Equal(t, KindURLBlocked, result.ErrorKind)
	})

	t.Run("upstream 5xx maps to upstream error", func(t *testing.T) {
		h.registerRESTTool(t, "error-tool", "agent-error", "sk-x", nil)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-error", InvokeRequest{
			Tool: "error-tool", IntentID: intentID, Path: "/error",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusError, result.Status)
		assert.Equal(t, KindUpstreamError, result.ErrorKind)
		assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus)
	})

	t.Run("slow upstream times out", func(t *testing.T) {
		h.registerRESTTool(t, "slow-tool", "agent-slow", "sk-x", nil)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-slow", InvokeRequest{
			Tool: "slow-tool", IntentID: intentID, Path: "/slow", TimeoutSeconds: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusTimeout, result.Status)
		assert.Equal(t, KindTimeout, result.ErrorKind)
	})

	t.Run("oversized response is rejected", func(t *testing.T) {
		h.registerRESTTool(t, "big-tool", "agent-big", "sk-x", nil)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-big", InvokeRequest{
			Tool: "big-tool", IntentID: intentID, Path: "/big",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusError, result.Status)
		assert.Equal(t, KindResponseTooLarge, result.ErrorKind)
	})

	t.Run("oauth2 refreshes on 401 and persists the token", func(t *testing.T) {
		_, err := h.tools.RegisterTool(ctx, services.RegisterToolRequest{
			Name:    "oauth-tool",
			Adapter: "oauth2",
			Config:  map[string]any{"base_url": h.server.URL, "method": "GET"},
		})
		require.NoError(t, err)

		cred, err := h.tools.CreateCredential(ctx, services.CreateCredentialRequest{
			AuthType: "oauth2",
			Secret:   "stale-token",
			Metadata: map[string]any{
				"token_url":     h.server.URL + "/token",
				"refresh_token": "rt-1",
			},
		})
		require.NoError(t, err)
		_, err = h.tools.CreateGrant(ctx, services.CreateGrantRequest{
			AgentID: "agent-oauth", ToolName: "oauth-tool", CredentialID: cred.ID,
		})
		require.NoError(t, err)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-oauth", InvokeRequest{
			Tool: "oauth-tool", IntentID: intentID, Path: "/oauth",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, result.Status)
		assert.Equal(t, true, result.Result["ok"])
		assert.Equal(t, true, result.Result["_refreshed"])

		updated, err := h.tools.GetCredential(ctx, cred.ID)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", updated.Secret)
	})

	t.Run("webhook adapter signs the body", func(t *testing.T) {
		_, err := h.tools.RegisterTool(ctx, services.RegisterToolRequest{
			Name:    "hook-tool",
			Adapter: "webhook",
			Config:  map[string]any{"base_url": h.server.URL, "method": "POST"},
		})
		require.NoError(t, err)

		cred, err := h.tools.CreateCredential(ctx, services.CreateCredentialRequest{
			AuthType: "webhook",
			Secret:   "whsec_test",
		})
		require.NoError(t, err)
		_, err = h.tools.CreateGrant(ctx, services.CreateGrantRequest{
			AgentID: "agent-hook", ToolName: "hook-tool", CredentialID: cred.ID,
		})
		require.NoError(t, err)
		intentID := h.newIntent(t)

		result, err := h.broker.Invoke(ctx, "agent-hook", InvokeRequest{
			Tool:     "hook-tool",
			IntentID: intentID,
			Path:     "/hook",
			Body:     map[string]any{"event": "ping"},
		})
		require.NoError(t, err)
		// 403 here would mean the signature did not verify upstream; 400
		// would mean the envelope was malformed.
		assert.Equal(t, StatusSuccess, result.Status)
		assert.Equal(t, true, result.Result["received"])
		assert.Equal(t, "hook-tool", result.Result["tool_name"])
		assert.Equal(t, "ping", result.Result["event"])
	})

	t.Run("transport error text is sanitized", func(t *testing.T) {
		h.registerRESTTool(t, "leaky-tool", "agent-leaky", "sk-x", nil)
		intentID := h.newIntent(t)

		leaky := NewBroker(h.tools, h.events, Options{
			AllowPrivateHosts: true,
			HTTPClient:        &http.Client{Transport: leakyTransport{}},
		})
		result, err := leaky.Invoke(ctx, "agent-leaky", InvokeRequest{
			Tool: "leaky-tool", IntentID: intentID, Path: "/echo",
		})
		require.NoError(t, err)

		assert.Equal(t, StatusError, result.Status)
		assert.NotContains(t, result.Error, leakedBlob)
		assert.Contains(t, result.Error, Redacted)
	})

	t.Run("unknown tool fails before any event", func(t *testing.T) {
		intentID := h.newIntent(t)

		_, err := h.broker.Invoke(ctx, "agent-echo", InvokeRequest{
			Tool: "no-such-tool", IntentID: intentID,
		})
		require.ErrorIs(t, err, services.ErrNotFound)

		page, err := h.events.ListEvents(ctx, intentID, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Events)
	})
}
