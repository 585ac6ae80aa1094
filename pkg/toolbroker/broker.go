// Package toolbroker executes tool calls on behalf of agents. Agents
// never see upstream credentials: the broker resolves the grant, injects
// the secret, enforces URL and rate constraints, and sanitizes results
// before they reach the caller or the event log.
package toolbroker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/tooldefinition"
	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/metrics"
	"github.com/openintent-io/openintent/pkg/services"
)

// Result status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusTimeout = "timeout"
	StatusDenied  = "denied"
)

// Error kinds carried by non-success results.
const (
	KindGrantDenied      = "GRANT_DENIED"
	KindURLBlocked       = "URL_BLOCKED"
	KindRateLimited      = "RATE_LIMITED"
	KindResponseTooLarge = "RESPONSE_TOO_LARGE"
	KindTimeout          = "TIMEOUT"
	KindUpstreamError    = "UPSTREAM_ERROR"
	KindBadRequest       = "BAD_REQUEST"
)

// InvokeRequest describes one tool call.
type InvokeRequest struct {
	Tool           string            `json:"tool"`
	IntentID       string            `json:"intent_id"`
	Method         string            `json:"method,omitempty"`
	Path           string            `json:"path,omitempty"`
	Query          map[string]string `json:"query,omitempty"`
	Body           map[string]any    `json:"body,omitempty"`
	TimeoutSeconds int64             `json:"timeout_seconds,omitempty"`
}

// Result is the envelope returned for every invocation.
type Result struct {
	Status             string         `json:"status"`
	ErrorKind          string         `json:"error_kind,omitempty"`
	Result             map[string]any `json:"result,omitempty"`
	Error              string         `json:"error,omitempty"`
	HTTPStatus         int            `json:"http_status,omitempty"`
	DurationMs         int64          `json:"duration_ms"`
	RequestFingerprint string         `json:"request_fingerprint,omitempty"`
}

// Options tunes broker behavior.
type Options struct {
	DefaultTimeout time.Duration
	// AllowPrivateHosts skips the private-IP URL check for deployments
	// whose tool endpoints live on an internal network.
	AllowPrivateHosts bool
	// HTTPClient overrides the outbound client, mainly for tests.
	HTTPClient *http.Client
}

// Broker dispatches tool invocations.
type Broker struct {
	tools      *services.ToolService
	eventSvc   *services.EventService
	httpClient *http.Client
	limiter    *rateLimiter

	defaultTimeout    time.Duration
	allowPrivateHosts bool
}

// NewBroker creates a tool broker.
func NewBroker(tools *services.ToolService, eventSvc *services.EventService, opts Options) *Broker {
	timeout := opts.DefaultTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	// Redirects are disabled: a vetted URL must not hop to an unvetted one.
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Broker{
		tools:             tools,
		eventSvc:          eventSvc,
		httpClient:        client,
		limiter:           newRateLimiter(),
		defaultTimeout:    timeout,
		allowPrivateHosts: opts.AllowPrivateHosts,
	}
}

// Invoke executes one tool call. It emits TOOL_CALL_STARTED before and
// TOOL_CALL_COMPLETED after the dispatch, regardless of outcome. A
// non-nil error means the invocation never started (unknown tool or
// intent, malformed request).
func (b *Broker) Invoke(ctx context.Context, agentID string, req InvokeRequest) (*Result, error) {
	if req.Tool == "" {
		return nil, services.NewValidationError("tool", "required")
	}
	if req.IntentID == "" {
		return nil, services.NewValidationError("intent_id", "required")
	}

	def, err := b.tools.GetTool(ctx, req.Tool)
	if err != nil {
		return nil, err
	}

	targetURL, body, err := buildTarget(def, req)
	if err != nil {
		return nil, services.NewValidationError("request", err.Error())
	}
	method := req.Method
	if method == "" {
		method = metaString(def.Config, "method", http.MethodPost)
	}
	method = strings.ToUpper(method)
	fingerprint := Fingerprint(method, targetURL, body)

	if _, err := b.eventSvc.AppendEvent(ctx, req.IntentID, agentID,
		events.EventTypeToolCallStarted,
		events.Document(events.ToolCallStartedPayload{
			Tool:        req.Tool,
			Fingerprint: fingerprint,
		})); err != nil {
		return nil, err
	}

	start := time.Now()
	result := b.execute(ctx, agentID, def, method, targetURL, body, req)
	result.DurationMs = time.Since(start).Milliseconds()
	result.RequestFingerprint = fingerprint
	// Upstream error text can echo credentials back; scrub it like any
	// other result field before it reaches the caller or the log.
	result.Error = sanitizeString(result.Error)

	metrics.ToolInvocations.WithLabelValues(result.Status).Inc()

	completed := events.Document(events.ToolCallCompletedPayload{
		Tool:        req.Tool,
		Status:      result.Status,
		HTTPStatus:  result.HTTPStatus,
		DurationMs:  result.DurationMs,
		Fingerprint: fingerprint,
		Result:      result.Result,
		Error:       result.Error,
	})
	if _, err := b.eventSvc.AppendEvent(ctx, req.IntentID, agentID,
		events.EventTypeToolCallCompleted, completed); err != nil {
		return nil, err
	}

	return result, nil
}

// execute runs the checks and the upstream call, returning the partially
// filled result envelope.
func (b *Broker) execute(ctx context.Context, agentID string, def *ent.ToolDefinition, method, targetURL string, body []byte, req InvokeRequest) *Result {
	grant, err := b.tools.GetGrant(ctx, agentID, def.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return denied(KindGrantDenied, "no grant for tool "+def.Name)
		}
		return failure(KindUpstreamError, err.Error())
	}
	if grant.ExpiresAt != nil && grant.ExpiresAt.Before(time.Now()) {
		return denied(KindGrantDenied, "grant expired")
	}

	window := time.Duration(grant.RateWindowSeconds) * time.Second
	if !b.limiter.allow(grant.ID, grant.RateLimit, window) {
		return denied(KindRateLimited,
			fmt.Sprintf("rate limit %d per %s exceeded", grant.RateLimit, window))
	}

	if err := ValidateTargetURL(targetURL, grant.AllowedHosts, b.allowPrivateHosts); err != nil {
		return denied(KindURLBlocked, err.Error())
	}

	cred, err := b.tools.GetCredential(ctx, grant.CredentialID)
	if err != nil {
		return failure(KindUpstreamError, "credential unavailable")
	}

	timeout := b.defaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	if timeout < config.MinBrokerTimeout {
		timeout = config.MinBrokerTimeout
	}
	if timeout > config.MaxBrokerTimeout {
		timeout = config.MaxBrokerTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, refreshed, err := b.dispatch(callCtx, def, cred, method, targetURL, body)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return &Result{Status: StatusTimeout, ErrorKind: KindTimeout,
				Error: fmt.Sprintf("upstream exceeded %s", timeout)}
		}
		return failure(KindUpstreamError, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxToolResponseSize+1))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return &Result{Status: StatusTimeout, ErrorKind: KindTimeout,
				Error: fmt.Sprintf("upstream exceeded %s", timeout)}
		}
		return failure(KindUpstreamError, err.Error())
	}
	if len(raw) > config.MaxToolResponseSize {
		return &Result{Status: StatusError, ErrorKind: KindResponseTooLarge,
			HTTPStatus: resp.StatusCode,
			Error:      fmt.Sprintf("response exceeds %d bytes", config.MaxToolResponseSize)}
	}

	payload := decodeBody(raw)
	sanitized := Sanitize(payload)
	if refreshed {
		if sanitized == nil {
			sanitized = map[string]any{}
		}
		sanitized["_refreshed"] = true
	}

	if resp.StatusCode >= 400 {
		return &Result{Status: StatusError, ErrorKind: KindUpstreamError,
			HTTPStatus: resp.StatusCode,
			Result:     sanitized,
			Error:      fmt.Sprintf("upstream returned %d", resp.StatusCode)}
	}
	return &Result{Status: StatusSuccess, HTTPStatus: resp.StatusCode, Result: sanitized}
}

// dispatch performs the HTTP call for the tool's adapter type. OAuth2
// retries once after a refresh on 401; the bool reports whether the
// returned response came from that retry.
func (b *Broker) dispatch(ctx context.Context, def *ent.ToolDefinition, cred *ent.Credential, method, targetURL string, body []byte) (*http.Response, bool, error) {
	resp, err := b.send(ctx, def, cred, method, targetURL, body, cred.Secret)
	if err != nil {
		return nil, false, err
	}

	if def.Adapter == tooldefinition.AdapterOauth2 && resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		token, rerr := b.refreshAccessToken(ctx, cred)
		if rerr != nil {
			return nil, false, fmt.Errorf("401 and token refresh failed: %w", rerr)
		}
		retried, err := b.send(ctx, def, cred, method, targetURL, body, token)
		return retried, true, err
	}
	return resp, false, nil
}

func (b *Broker) send(ctx context.Context, def *ent.ToolDefinition, cred *ent.Credential, method, targetURL string, body []byte, secret string) (*http.Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, targetURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if len(body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	switch def.Adapter {
	case tooldefinition.AdapterRest:
		if err := applyRESTAuth(httpReq, cred); err != nil {
			return nil, err
		}
	case tooldefinition.AdapterOauth2:
		httpReq.Header.Set("Authorization", "Bearer "+secret)
	case tooldefinition.AdapterWebhook:
		signWebhook(httpReq, secret, body)
	default:
		return nil, fmt.Errorf("unsupported adapter %q", def.Adapter)
	}

	return b.httpClient.Do(httpReq)
}

// buildTarget joins the tool's base URL with the request path and query,
// applies the tool's param_mapping to the caller parameters, and
// serializes the outbound body. Webhook tools always post the standard
// envelope instead of the raw parameters.
func buildTarget(def *ent.ToolDefinition, req InvokeRequest) (string, []byte, error) {
	base := metaString(def.Config, "base_url", "")
	if base == "" {
		return "", nil, fmt.Errorf("tool %s has no base_url", def.Name)
	}
	target := strings.TrimRight(base, "/")
	if req.Path != "" {
		if !strings.HasPrefix(req.Path, "/") {
			return "", nil, fmt.Errorf("path must start with /")
		}
		if strings.Contains(req.Path, "..") {
			return "", nil, fmt.Errorf("path must not contain ..")
		}
		target += req.Path
	}

	values := url.Values{}
	for k, v := range req.Query {
		values.Set(k, v)
	}

	bodyDoc := req.Body
	if mapping := metaMap(def.Config, "param_mapping"); len(mapping) > 0 && len(req.Body) > 0 {
		bodyDoc = make(map[string]any, len(req.Body))
		for k, v := range req.Body {
			rule, ok := mapping[k].(map[string]any)
			if !ok {
				bodyDoc[k] = v
				continue
			}
			name := k
			if n, ok := rule["name"].(string); ok && n != "" {
				name = n
			}
			if loc, _ := rule["in"].(string); loc == "query" {
				values.Set(name, fmt.Sprint(v))
			} else {
				bodyDoc[name] = v
			}
		}
		if len(bodyDoc) == 0 {
			bodyDoc = nil
		}
	}
	if len(values) > 0 {
		target += "?" + values.Encode()
	}

	if def.Adapter == tooldefinition.AdapterWebhook {
		body, err := webhookBody(def.Name, req.Body)
		if err != nil {
			return "", nil, err
		}
		return target, body, nil
	}

	var body []byte
	if bodyDoc != nil {
		raw, err := json.Marshal(bodyDoc)
		if err != nil {
			return "", nil, fmt.Errorf("marshal body: %w", err)
		}
		body = raw
	}
	return target, body, nil
}

func decodeBody(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err == nil {
		return doc
	}
	return map[string]any{"raw": string(raw)}
}

func denied(kind, msg string) *Result {
	return &Result{Status: StatusDenied, ErrorKind: kind, Error: msg}
}

func failure(kind, msg string) *Result {
	return &Result{Status: StatusError, ErrorKind: kind, Error: msg}
}
