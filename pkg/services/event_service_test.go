package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/pkg/database"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newEventFixture(t *testing.T) (*EventService, *IntentService, *database.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewEventService(db.Client, nil), NewIntentService(db.Client, nil), db
}

func TestEventService_AppendEvent(t *testing.T) {
	eventSvc, intents, _ := newEventFixture(t)
	ctx := context.Background()

	t.Run("sequences are contiguous from 1", func(t *testing.T) {
		it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "logged"})
		require.NoError(t, err)

		// CREATED already took sequence 1.
		for want := int64(2); want <= 4; want++ {
			entry, err := eventSvc.AppendEvent(ctx, it.ID, "agent-1", "COMMENT",
				map[string]any{"text": "note"})
			require.NoError(t, err)
			assert.Equal(t, want, entry.SequenceNumber)
		}
	})

	t.Run("terminal intents still accept appends", func(t *testing.T) {
		it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "audited"})
		require.NoError(t, err)
		completeIntent(t, intents, it.ID, it.Version)

		entry, err := eventSvc.AppendEvent(ctx, it.ID, "agent-2", "COMMENT",
			map[string]any{"text": "post-mortem"})
		require.NoError(t, err)
		assert.Greater(t, entry.SequenceNumber, int64(3))
	})

	t.Run("unknown intent is rejected", func(t *testing.T) {
		_, err := eventSvc.AppendEvent(ctx, "no-such-intent", "agent-1", "COMMENT", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("event type is required", func(t *testing.T) {
		it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "strict"})
		require.NoError(t, err)
		_, err = eventSvc.AppendEvent(ctx, it.ID, "agent-1", "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_ListEvents(t *testing.T) {
	eventSvc, intents, _ := newEventFixture(t)
	ctx := context.Background()

	it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "paged"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := eventSvc.AppendEvent(ctx, it.ID, "agent-1", "COMMENT", nil)
		require.NoError(t, err)
	}

	t.Run("pages in ascending sequence order", func(t *testing.T) {
		page, err := eventSvc.ListEvents(ctx, it.ID, 1, 3)
		require.NoError(t, err)
		require.Len(t, page.Events, 3)
		assert.True(t, page.HasMore)
		assert.Equal(t, int64(1), page.Events[0].SequenceNumber)
		assert.Equal(t, int64(3), page.Events[2].SequenceNumber)

		rest, err := eventSvc.ListEvents(ctx, it.ID, 4, 10)
		require.NoError(t, err)
		require.Len(t, rest.Events, 3)
		assert.False(t, rest.HasMore)
		assert.Equal(t, int64(6), rest.Events[2].SequenceNumber)
	})

	t.Run("from below 1 starts at the beginning", func(t *testing.T) {
		page, err := eventSvc.ListEvents(ctx, it.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, page.Events, 6)
	})

	t.Run("unknown intent is not found", func(t *testing.T) {
		_, err := eventSvc.ListEvents(ctx, "no-such-intent", 1, 10)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventService_PruneEvents(t *testing.T) {
	eventSvc, intents, db := newEventFixture(t)
	ctx := context.Background()

	terminal, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "old and done"})
	require.NoError(t, err)
	completeIntent(t, intents, terminal.ID, terminal.Version)

	live, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "still running"})
	require.NoError(t, err)

	// Backdate every row; created_at is immutable through ent.
	_, err = db.DB().ExecContext(ctx,
		"UPDATE intent_events SET created_at = $1", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	t.Run("zero max age is a no-op", func(t *testing.T) {
		n, err := eventSvc.PruneEvents(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("prunes terminal intents only", func(t *testing.T) {
		n, err := eventSvc.PruneEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 3, n) // CREATED plus two STATUS_CHANGED

		pruned, err := eventSvc.ListEvents(ctx, terminal.ID, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, pruned.Events)

		kept, err := eventSvc.ListEvents(ctx, live.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, kept.Events, 1)
		assert.Equal(t, events.EventTypeCreated, kept.Events[0].EventType)
	})
}
