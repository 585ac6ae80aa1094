package events

import (
	"encoding/json"
	"time"
)

// Typed payloads for events the service itself emits. Agent-supplied
// events carry arbitrary payload documents and bypass these.

// StatusChangedPayload describes a status transition.
type StatusChangedPayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

// StatePatchedPayload describes a state mutation.
type StatePatchedPayload struct {
	Patch      map[string]any `json:"patch,omitempty"`
	Replace    bool           `json:"replace,omitempty"`
	NewVersion int64          `json:"new_version"`
}

// ConstraintsUpdatedPayload carries the replacement constraint list.
type ConstraintsUpdatedPayload struct {
	Constraints []string `json:"constraints"`
}

// LeasePayload describes a lease lifecycle event.
type LeasePayload struct {
	LeaseID       string    `json:"lease_id"`
	Scope         string    `json:"scope"`
	HolderAgentID string    `json:"holder_agent_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// MembershipAddedPayload describes a portfolio membership addition.
type MembershipAddedPayload struct {
	PortfolioID string `json:"portfolio_id"`
	Role        string `json:"role"`
	Priority    int    `json:"priority"`
}

// AggregateChangedPayload carries the recomputed completion summary.
type AggregateChangedPayload struct {
	Aggregate map[string]any `json:"aggregate"`
}

// FailureRecordedPayload describes one failed attempt.
type FailureRecordedPayload struct {
	ErrorType     string `json:"error_type"`
	ErrorMessage  string `json:"error_message"`
	Recoverable   bool   `json:"recoverable"`
	AttemptNumber int    `json:"attempt_number"`
}

// RetryScheduledPayload carries the computed backoff for the next attempt.
type RetryScheduledPayload struct {
	AttemptNumber int    `json:"attempt_number"`
	DelayMs       int64  `json:"delay_ms"`
	Strategy      string `json:"strategy"`
}

// RetryExhaustedPayload explains why no further retries will happen.
type RetryExhaustedPayload struct {
	AttemptNumber int    `json:"attempt_number"`
	Reason        string `json:"reason"`
}

// ToolCallStartedPayload is emitted before every broker dispatch.
type ToolCallStartedPayload struct {
	Tool        string `json:"tool"`
	Fingerprint string `json:"request_fingerprint,omitempty"`
}

// ToolCallCompletedPayload is emitted after every broker dispatch,
// regardless of outcome. Result has already been sanitized.
type ToolCallCompletedPayload struct {
	Tool        string         `json:"tool"`
	Status      string         `json:"status"`
	HTTPStatus  int            `json:"http_status,omitempty"`
	DurationMs  int64          `json:"duration_ms"`
	Fingerprint string         `json:"request_fingerprint,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// CostRecordedPayload describes one cost ledger entry.
type CostRecordedPayload struct {
	CostType string  `json:"cost_type"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	AgentID  string  `json:"agent_id"`
}

// AttachmentCreatedPayload describes a stored attachment. The blob itself
// never travels through the event stream.
type AttachmentCreatedPayload struct {
	AttachmentID string `json:"attachment_id"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	SHA256       string `json:"sha256"`
}

// Document converts a typed payload into the generic document form stored
// in the event payload column.
func Document(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"marshal_error": err.Error()}
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]any{"marshal_error": err.Error()}
	}
	return doc
}
