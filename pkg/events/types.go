// Package events provides real-time fan-out of the durable per-intent
// event log: a pg_notify publisher, a dedicated LISTEN connection, and a
// stream broker with per-subscriber bounded queues and configurable
// backpressure.
//
// The database log is authoritative. NOTIFY delivery is best-effort and
// subscribers recover gaps by replaying the log from their last delivered
// sequence number.
package events

import "github.com/openintent-io/openintent/pkg/models"

// Intent lifecycle event types.
const (
	EventTypeCreated            = "CREATED"
	EventTypeStatePatched       = "STATE_PATCHED"
	EventTypeStatusChanged      = "STATUS_CHANGED"
	EventTypeConstraintsUpdated = "CONSTRAINTS_UPDATED"
)

// Lease event types.
const (
	EventTypeLeaseAcquired = "LEASE_ACQUIRED"
	EventTypeLeaseRenewed  = "LEASE_RENEWED"
	EventTypeLeaseReleased = "LEASE_RELEASED"
	EventTypeLeaseExpired  = "LEASE_EXPIRED"
)

// Portfolio and graph event types.
const (
	EventTypeMembershipAdded  = "MEMBERSHIP_ADDED"
	EventTypeAggregateChanged = "AGGREGATE_CHANGED"
)

// Governance event types.
const (
	EventTypeComment               = "COMMENT"
	EventTypeArbitrationRequested  = "ARBITRATION_REQUESTED"
	EventTypeDecisionRecorded      = "DECISION_RECORDED"
	EventTypeCostRecorded          = "COST_RECORDED"
	EventTypeAttachmentCreated     = "ATTACHMENT_CREATED"
	EventTypeCostThresholdExceeded = "COST_THRESHOLD_EXCEEDED"
	EventTypeTimeoutReached        = "TIMEOUT_REACHED"
)

// Retry subsystem event types.
const (
	EventTypeRetryPolicySet  = "RETRY_POLICY_SET"
	EventTypeFailureRecorded = "FAILURE_RECORDED"
	EventTypeRetryScheduled  = "RETRY_SCHEDULED"
	EventTypeRetryExhausted  = "RETRY_EXHAUSTED"
)

// LLM and tool execution event types. The substrate records these on
// behalf of agents; streaming chunk events are transient.
const (
	EventTypeLLMRequestStarted   = "LLM_REQUEST_STARTED"
	EventTypeLLMRequestCompleted = "LLM_REQUEST_COMPLETED"
	EventTypeLLMRequestFailed    = "LLM_REQUEST_FAILED"
	EventTypeStreamStarted       = "STREAM_STARTED"
	EventTypeStreamChunk         = "STREAM_CHUNK"
	EventTypeStreamCompleted     = "STREAM_COMPLETED"
	EventTypeStreamCancelled     = "STREAM_CANCELLED"
	EventTypeToolCallStarted     = "TOOL_CALL_STARTED"
	EventTypeToolCallCompleted   = "TOOL_CALL_COMPLETED"
)

// Policy selects backpressure behavior for a slow subscriber.
type Policy string

const (
	// PolicyDropOldest evicts the queue head and surfaces a lag marker
	// with the evicted count on the next delivery. Default for dashboards.
	PolicyDropOldest Policy = "drop_oldest"
	// PolicyBlock never loses events: overflowing live deliveries are
	// skipped and the subscriber drains the durable log until caught up.
	// Requires an intent-scoped subscription.
	PolicyBlock Policy = "block"
	// PolicyDisconnect closes the stream when the queue would overflow.
	PolicyDisconnect Policy = "disconnect"
)

// Valid reports whether p is a known backpressure policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyDropOldest, PolicyBlock, PolicyDisconnect:
		return true
	}
	return false
}

// GlobalIntentsChannel carries status-level events for all intents.
// Dashboards listing many intents subscribe here.
const GlobalIntentsChannel = "intents"

// IntentChannel returns the NOTIFY channel for one intent's events.
// Format: "intent:{intent_id}"
func IntentChannel(intentID string) string {
	return "intent:" + intentID
}

// StreamEvent is one frame delivered to a stream subscriber.
type StreamEvent struct {
	// Type is "event" for log entries and "lag" for backpressure markers.
	Type    string             `json:"type"`
	Event   *models.EventEntry `json:"event,omitempty"`
	Dropped int64              `json:"dropped,omitempty"`
}

// ClientMessage is the client-to-server WebSocket control message.
type ClientMessage struct {
	Action       string   `json:"action"` // "subscribe", "unsubscribe", "ping"
	IntentID     string   `json:"intent_id,omitempty"`
	EventTypes   []string `json:"event_types,omitempty"`
	Actor        string   `json:"actor,omitempty"`
	FromSequence int64    `json:"from_sequence,omitempty"`
	Backpressure string   `json:"backpressure,omitempty"`
}
