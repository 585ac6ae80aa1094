package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openintent-io/openintent/pkg/metrics"
	"github.com/openintent-io/openintent/pkg/models"
)

// notifyLimit is a safety margin under PostgreSQL's 8000-byte NOTIFY
// payload cap. Larger payloads are replaced by a truncation envelope and
// re-fetched from the durable log by the receiving broker.
const notifyLimit = 7900

// Publisher broadcasts committed event log entries via pg_notify.
//
// Durable rows are appended inside the mutation transaction by the
// services; Notify runs after commit and is best-effort. A lost NOTIFY
// only delays delivery: subscribers replaying from the log still see
// every sequence number.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the shared database pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Notify broadcasts a committed entry on its intent channel. Status-level
// events are mirrored on the global intents channel for dashboards.
func (p *Publisher) Notify(ctx context.Context, entry models.EventEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		slog.Warn("Failed to marshal event for NOTIFY",
			"intent_id", entry.IntentID, "event_type", entry.EventType, "error", err)
		return
	}

	wire, err := truncateIfNeeded(payload, entry)
	if err != nil {
		slog.Warn("Failed to build NOTIFY payload",
			"intent_id", entry.IntentID, "event_type", entry.EventType, "error", err)
		return
	}

	if err := p.notify(ctx, IntentChannel(entry.IntentID), wire); err != nil {
		slog.Warn("NOTIFY failed on intent channel",
			"intent_id", entry.IntentID, "event_type", entry.EventType, "error", err)
	}

	if globalEvent(entry.EventType) {
		if err := p.notify(ctx, GlobalIntentsChannel, wire); err != nil {
			slog.Warn("NOTIFY failed on global channel",
				"intent_id", entry.IntentID, "event_type", entry.EventType, "error", err)
		}
	}

	metrics.EventsPublished.Inc()
}

func (p *Publisher) notify(ctx context.Context, channel, payload string) error {
	_, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, payload)
	if err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return nil
}

// globalEvent reports whether an event type is mirrored on the global
// channel. Dashboards watching many intents only need lifecycle and
// aggregate transitions, not the full per-intent firehose.
func globalEvent(eventType string) bool {
	switch eventType {
	case EventTypeCreated, EventTypeStatusChanged, EventTypeAggregateChanged,
		EventTypeRetryExhausted, EventTypeCostThresholdExceeded, EventTypeTimeoutReached:
		return true
	}
	return false
}

// truncateIfNeeded returns the full payload when it fits, otherwise a
// minimal envelope carrying only the routing fields the broker needs to
// re-fetch the row.
func truncateIfNeeded(payload []byte, entry models.EventEntry) (string, error) {
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}
	envelope := map[string]any{
		"intent_id":       entry.IntentID,
		"sequence_number": entry.SequenceNumber,
		"event_type":      entry.EventType,
		"truncated":       true,
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshal truncation envelope: %w", err)
	}
	return string(raw), nil
}
