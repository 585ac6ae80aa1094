package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newIntentFixture(t *testing.T) (*IntentService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewIntentService(db.Client, nil), NewEventService(db.Client, nil)
}

// completeIntent walks an intent to COMPLETED, returning its final version.
func completeIntent(t *testing.T, svc *IntentService, id string, version int64) int64 {
	t.Helper()
	ctx := context.Background()
	it, err := svc.SetStatus(ctx, id, "test-agent", models.SetStatusRequest{
		ExpectedVersion: version, Status: "active",
	})
	require.NoError(t, err)
	it, err = svc.SetStatus(ctx, id, "test-agent", models.SetStatusRequest{
		ExpectedVersion: it.Version, Status: "completed",
	})
	require.NoError(t, err)
	return it.Version
}

func TestIntentService_CreateIntent(t *testing.T) {
	svc, eventSvc := newIntentFixture(t)
	ctx := context.Background()

	t.Run("starts pending at version 1 with a CREATED event", func(t *testing.T) {
		created, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title:       "summarize the incident",
			Description: "first pass",
			State:       models.StateDocument{"progress": 0},
			Constraints: []string{"budget: 5 USD"},
		})
		require.NoError(t, err)

		assert.Equal(t, intent.StatusPending, created.Status)
		assert.Equal(t, int64(1), created.Version)
		assert.Equal(t, "agent-1", created.CreatorAgentID)

		page, err := eventSvc.ListEvents(ctx, created.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, events.EventTypeCreated, page.Events[0].EventType)
		assert.Equal(t, int64(1), page.Events[0].SequenceNumber)
		assert.Equal(t, "agent-1", page.Events[0].ActorAgentID)
	})

	t.Run("requires a title", func(t *testing.T) {
		_, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("idempotency key returns the existing intent", func(t *testing.T) {
		first, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title:          "dedup me",
			IdempotencyKey: "key-1",
		})
		require.NoError(t, err)

		second, err := svc.CreateIntent(ctx, "agent-2", models.CreateIntentRequest{
			Title:          "different title, same key",
			IdempotencyKey: "key-1",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "dedup me", second.Title)
	})

	t.Run("unknown parent is rejected", func(t *testing.T) {
		_, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title:    "orphan",
			ParentID: "no-such-intent",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("terminal parent is rejected", func(t *testing.T) {
		parent, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "parent"})
		require.NoError(t, err)
		completeIntent(t, svc, parent.ID, parent.Version)

		_, err = svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title:    "late child",
			ParentID: parent.ID,
		})
		assert.ErrorIs(t, err, ErrTerminal)
	})

	t.Run("unknown dependency is rejected", func(t *testing.T) {
		_, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title:     "dependent",
			DependsOn: []string{"no-such-intent"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid retry policy is rejected", func(t *testing.T) {
		_, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title: "bad policy",
			RetryPolicy: &models.RetryPolicy{
				Strategy: "quadratic", BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 3,
			},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestIntentService_UpdateState(t *testing.T) {
	svc, eventSvc := newIntentFixture(t)
	ctx := context.Background()

	create := func(t *testing.T, state models.StateDocument) *ent.Intent {
		t.Helper()
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
			Title: "stateful", State: state,
		})
		require.NoError(t, err)
		return it
	}

	t.Run("shallow merge bumps the version and logs STATE_PATCHED", func(t *testing.T) {
		it := create(t, models.StateDocument{"progress": 0, "notes": "initial"})

		updated, err := svc.UpdateState(ctx, it.ID, "agent-1", models.PatchStateRequest{
			ExpectedVersion: 1,
			Patch:           models.StateDocument{"progress": 50},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2), updated.Version)
		assert.EqualValues(t, 50, updated.State["progress"])
		assert.Equal(t, "initial", updated.State["notes"])

		page, err := eventSvc.ListEvents(ctx, it.ID, 2, 10)
		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, events.EventTypeStatePatched, page.Events[0].EventType)
	})

	t.Run("replace discards unreferenced keys", func(t *testing.T) {
		it := create(t, models.StateDocument{"progress": 0, "notes": "initial"})

		updated, err := svc.UpdateState(ctx, it.ID, "agent-1", models.PatchStateRequest{
			ExpectedVersion: 1,
			Patch:           models.StateDocument{"fresh": true},
			Replace:         true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StateDocument{"fresh": true}, updated.State)
	})

	t.Run("stale expected_version conflicts with the current version", func(t *testing.T) {
		it := create(t, nil)
		_, err := svc.UpdateState(ctx, it.ID, "agent-1", models.PatchStateRequest{
			ExpectedVersion: 1, Patch: models.StateDocument{"a": 1},
		})
		require.NoError(t, err)

		_, err = svc.UpdateState(ctx, it.ID, "agent-2", models.PatchStateRequest{
			ExpectedVersion: 1, Patch: models.StateDocument{"b": 2},
		})
		var conflict *VersionConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(1), conflict.ExpectedVersion)
		assert.Equal(t, int64(2), conflict.CurrentVersion)
	})

	t.Run("empty patch without replace is rejected", func(t *testing.T) {
		it := create(t, nil)
		_, err := svc.UpdateState(ctx, it.ID, "agent-1", models.PatchStateRequest{ExpectedVersion: 1})
		assert.True(t, IsValidationError(err))
	})

	t.Run("terminal intent rejects state changes", func(t *testing.T) {
		it := create(t, nil)
		version := completeIntent(t, svc, it.ID, it.Version)

		_, err := svc.UpdateState(ctx, it.ID, "agent-1", models.PatchStateRequest{
			ExpectedVersion: version, Patch: models.StateDocument{"a": 1},
		})
		assert.ErrorIs(t, err, ErrTerminal)
	})
}

func TestIntentService_SetStatus(t *testing.T) {
	svc, eventSvc := newIntentFixture(t)
	ctx := context.Background()

	t.Run("allowed transition logs STATUS_CHANGED", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "work"})
		require.NoError(t, err)

		updated, err := svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: 1, Status: "active", Reason: "picked up",
		})
		require.NoError(t, err)
		assert.Equal(t, intent.StatusActive, updated.Status)
		assert.Equal(t, int64(2), updated.Version)

		page, err := eventSvc.ListEvents(ctx, it.ID, 2, 10)
		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, events.EventTypeStatusChanged, page.Events[0].EventType)
		assert.Equal(t, "active", page.Events[0].Payload["to"])
	})

	t.Run("status strings are case-insensitive", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "case"})
		require.NoError(t, err)

		updated, err := svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: 1, Status: "ACTIVE",
		})
		require.NoError(t, err)
		assert.Equal(t, intent.StatusActive, updated.Status)
	})

	t.Run("disallowed transition is rejected", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "skip ahead"})
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: 1, Status: "completed",
		})
		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "pending", invalid.From)
		assert.Equal(t, "completed", invalid.To)
	})

	t.Run("terminal status has no outgoing transitions", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "done"})
		require.NoError(t, err)
		version := completeIntent(t, svc, it.ID, it.Version)

		_, err = svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: version, Status: "active",
		})
		assert.ErrorIs(t, err, ErrTerminal)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "typo"})
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: 1, Status: "runnning",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("status hook fires after commit", func(t *testing.T) {
		it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "hooked"})
		require.NoError(t, err)

		var hooked string
		svc.SetStatusHook(func(ctx context.Context, intentID string) { hooked = intentID })
		defer svc.SetStatusHook(nil)

		_, err = svc.SetStatus(ctx, it.ID, "agent-1", models.SetStatusRequest{
			ExpectedVersion: 1, Status: "active",
		})
		require.NoError(t, err)
		assert.Equal(t, it.ID, hooked)
	})
}

func TestIntentService_SetConstraints(t *testing.T) {
	svc, eventSvc := newIntentFixture(t)
	ctx := context.Background()

	it, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{
		Title:       "constrained",
		Constraints: []string{"old"},
	})
	require.NoError(t, err)

	updated, err := svc.SetConstraints(ctx, it.ID, "agent-1", models.SetConstraintsRequest{
		ExpectedVersion: 1,
		Constraints:     []string{"budget: 10 USD", "deadline: friday"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"budget: 10 USD", "deadline: friday"}, updated.Constraints)
	assert.Equal(t, int64(2), updated.Version)

	page, err := eventSvc.ListEvents(ctx, it.ID, 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Equal(t, events.EventTypeConstraintsUpdated, page.Events[0].EventType)
}

func TestIntentService_ListIntents(t *testing.T) {
	svc, _ := newIntentFixture(t)
	ctx := context.Background()

	parent, err := svc.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "parent"})
	require.NoError(t, err)
	child, err := svc.CreateIntent(ctx, "agent-2", models.CreateIntentRequest{
		Title: "child", ParentID: parent.ID,
	})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, child.ID, "agent-2", models.SetStatusRequest{
		ExpectedVersion: 1, Status: "active",
	})
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		items, err := svc.ListIntents(ctx, models.IntentFilters{Status: []string{"ACTIVE"}})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, child.ID, items[0].ID)
	})

	t.Run("filters by parent", func(t *testing.T) {
		items, err := svc.ListIntents(ctx, models.IntentFilters{ParentID: parent.ID})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, child.ID, items[0].ID)
	})

	t.Run("filters by creator", func(t *testing.T) {
		items, err := svc.ListIntents(ctx, models.IntentFilters{Creator: "agent-1"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, parent.ID, items[0].ID)
	})
}
