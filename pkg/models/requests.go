package models

import "time"

// CreateIntentRequest contains fields for creating a new intent.
type CreateIntentRequest struct {
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	State          StateDocument `json:"state,omitempty"`
	Constraints    []string      `json:"constraints,omitempty"`
	ParentID       string        `json:"parent_id,omitempty"`
	DependsOn      []string      `json:"depends_on,omitempty"`
	RetryPolicy    *RetryPolicy  `json:"retry_policy,omitempty"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
}

// IntentFilters contains filtering options for listing intents.
type IntentFilters struct {
	Status   []string `json:"status,omitempty"`
	ParentID string   `json:"parent_id,omitempty"`
	Creator  string   `json:"creator,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}

// PatchStateRequest carries a shallow state patch with the optimistic
// concurrency token.
type PatchStateRequest struct {
	ExpectedVersion int64         `json:"expected_version"`
	Patch           StateDocument `json:"patch"`
	Replace         bool          `json:"replace,omitempty"`
}

// SetStatusRequest carries a status transition request.
type SetStatusRequest struct {
	ExpectedVersion int64  `json:"expected_version"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
}

// SetConstraintsRequest replaces the informational constraint list.
type SetConstraintsRequest struct {
	ExpectedVersion int64    `json:"expected_version"`
	Constraints     []string `json:"constraints"`
}

// AcquireLeaseRequest contains fields for acquiring a work lease.
type AcquireLeaseRequest struct {
	Scope      string `json:"scope"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

// CreatePortfolioRequest contains fields for creating a portfolio.
type CreatePortfolioRequest struct {
	Name             string            `json:"name"`
	GovernancePolicy *GovernancePolicy `json:"governance_policy,omitempty"`
}

// AddMemberRequest adds an intent to a portfolio.
type AddMemberRequest struct {
	IntentID string `json:"intent_id"`
	Role     string `json:"role,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// SetRetryPolicyRequest stores or replaces an intent's retry policy.
type SetRetryPolicyRequest struct {
	ExpectedVersion int64       `json:"expected_version"`
	Policy          RetryPolicy `json:"policy"`
}

// RecordFailureRequest contains fields for recording a failed attempt.
type RecordFailureRequest struct {
	ErrorType    string         `json:"error_type"`
	ErrorMessage string         `json:"error_message"`
	Recoverable  bool           `json:"recoverable"`
	Context      map[string]any `json:"context,omitempty"`
}

// RecordCostRequest contains fields for appending a cost ledger entry.
type RecordCostRequest struct {
	CostType    string  `json:"cost_type"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CreateAttachmentRequest contains fields for storing an attachment.
// Content arrives base64-encoded on the wire and is decoded by the handler.
type CreateAttachmentRequest struct {
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type,omitempty"`
	Content     []byte         `json:"-"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ArbitrationRequest asks governance to arbitrate a dispute on an intent.
type ArbitrationRequest struct {
	Question string         `json:"question"`
	Options  []string       `json:"options,omitempty"`
	Context  map[string]any `json:"context,omitempty"`
}

// DecisionRequest records an arbitration decision.
type DecisionRequest struct {
	Decision  string         `json:"decision"`
	Rationale string         `json:"rationale,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	// Unblock moves a BLOCKED intent back to ACTIVE alongside the decision.
	Unblock         bool  `json:"unblock,omitempty"`
	ExpectedVersion int64 `json:"expected_version,omitempty"`
}

// EventPage is a page of the durable per-intent event log.
type EventPage struct {
	IntentID string       `json:"intent_id"`
	Events   []EventEntry `json:"events"`
	HasMore  bool         `json:"has_more"`
}

// EventEntry is the wire form of one event log row.
type EventEntry struct {
	ID             int            `json:"id"`
	IntentID       string         `json:"intent_id"`
	EventType      string         `json:"event_type"`
	ActorAgentID   string         `json:"actor_agent_id"`
	SequenceNumber int64          `json:"sequence_number"`
	Payload        map[string]any `json:"payload,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}
