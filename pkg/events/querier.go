package events

import (
	"context"

	"github.com/openintent-io/openintent/pkg/models"
)

// catchupBatchSize bounds one durable-log fetch during replay or
// block-mode recovery.
const catchupBatchSize = 200

// EventQuerier reads the durable event log. Implemented by the event
// service; the broker uses it for replay, block-mode catchup, and
// re-fetching truncated NOTIFY payloads.
type EventQuerier interface {
	// ListEventsSince returns up to limit events for an intent with
	// sequence_number >= fromSequence, in ascending sequence order.
	ListEventsSince(ctx context.Context, intentID string, fromSequence int64, limit int) ([]models.EventEntry, error)

	// GetEvent returns one event by intent and sequence number.
	GetEvent(ctx context.Context, intentID string, sequenceNumber int64) (*models.EventEntry, error)
}
