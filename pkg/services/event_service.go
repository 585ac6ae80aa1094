package services

import (
	"context"
	"fmt"
	"time"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
)

// EventService reads and appends the durable per-intent event log. It
// implements events.EventQuerier for the stream broker's replay and
// truncation re-fetch paths.
type EventService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client, publisher *events.Publisher) *EventService {
	return &EventService{client: client, publisher: publisher}
}

// appendEvent inserts the next event for an intent inside the caller's
// transaction. The caller must hold the intent row lock; that serializes
// sequence assignment, and the unique (intent_id, sequence_number) index
// backstops it.
func appendEvent(ctx context.Context, tx *ent.Tx, intentID, eventType, actor string, payload map[string]any) (*models.EventEntry, error) {
	var next int64 = 1
	last, err := tx.IntentEvent.Query().
		Where(intentevent.IntentIDEQ(intentID)).
		Order(ent.Desc(intentevent.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query last sequence: %w", err)
		}
	} else {
		next = last.SequenceNumber + 1
	}

	builder := tx.IntentEvent.Create().
		SetIntentID(intentID).
		SetEventType(eventType).
		SetActorAgentID(actor).
		SetSequenceNumber(next)
	if payload != nil {
		builder.SetPayload(payload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	entry := entryFromRow(row)
	return &entry, nil
}

func entryFromRow(e *ent.IntentEvent) models.EventEntry {
	return models.EventEntry{
		ID:             e.ID,
		IntentID:       e.IntentID,
		EventType:      e.EventType,
		ActorAgentID:   e.ActorAgentID,
		SequenceNumber: e.SequenceNumber,
		Payload:        e.Payload,
		Timestamp:      e.CreatedAt,
	}
}

// AppendEvent appends an agent-supplied event. Terminal intents still
// accept appends so the audit trail can record post-mortem activity.
func (s *EventService) AppendEvent(ctx context.Context, intentID, actor, eventType string, payload map[string]any) (*models.EventEntry, error) {
	if eventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the intent row to serialize sequence assignment.
	_, err = tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}

	entry, err := appendEvent(ctx, tx, intentID, eventType, actor, payload)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
	return entry, nil
}

// ListEvents returns a page of the log in ascending sequence order,
// starting at fromSequence.
func (s *EventService) ListEvents(ctx context.Context, intentID string, fromSequence int64, limit int) (*models.EventPage, error) {
	exists, err := s.client.Intent.Query().Where(intent.IDEQ(intentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query intent: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if fromSequence < 1 {
		fromSequence = 1
	}

	rows, err := s.client.IntentEvent.Query().
		Where(
			intentevent.IntentIDEQ(intentID),
			intentevent.SequenceNumberGTE(fromSequence),
		).
		Order(ent.Asc(intentevent.FieldSequenceNumber)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	page := &models.EventPage{
		IntentID: intentID,
		Events:   make([]models.EventEntry, 0, len(rows)),
		HasMore:  hasMore,
	}
	for _, row := range rows {
		page.Events = append(page.Events, entryFromRow(row))
	}
	return page, nil
}

// ListEventsSince implements events.EventQuerier.
func (s *EventService) ListEventsSince(ctx context.Context, intentID string, fromSequence int64, limit int) ([]models.EventEntry, error) {
	rows, err := s.client.IntentEvent.Query().
		Where(
			intentevent.IntentIDEQ(intentID),
			intentevent.SequenceNumberGTE(fromSequence),
		).
		Order(ent.Asc(intentevent.FieldSequenceNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	entries := make([]models.EventEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entryFromRow(row))
	}
	return entries, nil
}

// PruneEvents deletes log entries older than maxAge for intents that
// have reached a terminal status. Live intents keep their full log so
// replay stays gap-free.
func (s *EventService) PruneEvents(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-maxAge)

	ids, err := s.client.Intent.Query().
		Where(intent.StatusIn(
			intent.StatusCompleted,
			intent.StatusCancelled,
			intent.StatusFailed,
		)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query terminal intents: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := s.client.IntentEvent.Delete().
		Where(
			intentevent.IntentIDIn(ids...),
			intentevent.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return count, nil
}

// GetEvent implements events.EventQuerier.
func (s *EventService) GetEvent(ctx context.Context, intentID string, sequenceNumber int64) (*models.EventEntry, error) {
	row, err := s.client.IntentEvent.Query().
		Where(
			intentevent.IntentIDEQ(intentID),
			intentevent.SequenceNumberEQ(sequenceNumber),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	entry := entryFromRow(row)
	return &entry, nil
}
