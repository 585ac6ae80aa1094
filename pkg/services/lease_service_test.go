package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newLeaseFixture(t *testing.T) (*LeaseService, *IntentService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewLeaseService(db.Client, nil),
		NewIntentService(db.Client, nil),
		NewEventService(db.Client, nil)
}

func TestLeaseService_Acquire(t *testing.T) {
	leases, intents, eventSvc := newLeaseFixture(t)
	ctx := context.Background()

	newIntent := func(t *testing.T) string {
		t.Helper()
		it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "leased work"})
		require.NoError(t, err)
		return it.ID
	}

	t.Run("grants an active lease and logs LEASE_ACQUIRED", func(t *testing.T) {
		intentID := newIntent(t)

		l, err := leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{
			Scope: "files/report.md", TTLSeconds: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, lease.StatusActive, l.Status)
		assert.Equal(t, "agent-1", l.HolderAgentID)
		assert.WithinDuration(t, time.Now().Add(60*time.Second), l.ExpiresAt, 5*time.Second)

		page, err := eventSvc.ListEvents(ctx, intentID, 2, 10)
		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, events.EventTypeLeaseAcquired, page.Events[0].EventType)
	})

	t.Run("conflicting scope reports the holder", func(t *testing.T) {
		intentID := newIntent(t)
		_, err := leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		require.NoError(t, err)

		_, err = leases.Acquire(ctx, intentID, "agent-2", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		var conflict *LeaseConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "agent-1", conflict.HolderAgentID)
		assert.Equal(t, "scope-a", conflict.Scope)
	})

	t.Run("different scopes coexist on one intent", func(t *testing.T) {
		intentID := newIntent(t)
		_, err := leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		require.NoError(t, err)
		_, err = leases.Acquire(ctx, intentID, "agent-2", models.AcquireLeaseRequest{
			Scope: "scope-b", TTLSeconds: 60,
		})
		require.NoError(t, err)

		active, err := leases.List(ctx, intentID)
		require.NoError(t, err)
		assert.Len(t, active, 2)
	})

	t.Run("expired lease is swept lazily and does not block", func(t *testing.T) {
		intentID := newIntent(t)
		first, err := leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		require.NoError(t, err)

		// Backdate the expiry to simulate a stale lease the sweeper has
		// not reached yet.
		err = first.Update().SetExpiresAt(time.Now().Add(-time.Minute)).Exec(ctx)
		require.NoError(t, err)

		second, err := leases.Acquire(ctx, intentID, "agent-2", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, "agent-2", second.HolderAgentID)

		// The log records the expiry before the new acquisition.
		page, err := eventSvc.ListEvents(ctx, intentID, 1, 10)
		require.NoError(t, err)
		types := make([]string, 0, len(page.Events))
		for _, e := range page.Events {
			types = append(types, e.EventType)
		}
		assert.Contains(t, types, events.EventTypeLeaseExpired)
	})

	t.Run("terminal intent rejects acquisition", func(t *testing.T) {
		it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "done"})
		require.NoError(t, err)
		completeIntent(t, intents, it.ID, it.Version)

		_, err = leases.Acquire(ctx, it.ID, "agent-1", models.AcquireLeaseRequest{
			Scope: "scope-a", TTLSeconds: 60,
		})
		assert.ErrorIs(t, err, ErrTerminal)
	})

	t.Run("validates scope and ttl", func(t *testing.T) {
		intentID := newIntent(t)
		_, err := leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{TTLSeconds: 60})
		assert.True(t, IsValidationError(err))
		_, err = leases.Acquire(ctx, intentID, "agent-1", models.AcquireLeaseRequest{Scope: "s"})
		assert.True(t, IsValidationError(err))
	})
}

func TestLeaseService_RenewAndRelease(t *testing.T) {
	leases, intents, _ := newLeaseFixture(t)
	ctx := context.Background()

	it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "held"})
	require.NoError(t, err)

	t.Run("holder renews, others cannot", func(t *testing.T) {
		l, err := leases.Acquire(ctx, it.ID, "agent-1", models.AcquireLeaseRequest{
			Scope: "renewable", TTLSeconds: 30,
		})
		require.NoError(t, err)

		renewed, err := leases.Renew(ctx, l.ID, "agent-1", 120)
		require.NoError(t, err)
		assert.True(t, renewed.ExpiresAt.After(l.ExpiresAt))

		_, err = leases.Renew(ctx, l.ID, "agent-2", 120)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("release frees the scope for the next holder", func(t *testing.T) {
		l, err := leases.Acquire(ctx, it.ID, "agent-1", models.AcquireLeaseRequest{
			Scope: "releasable", TTLSeconds: 60,
		})
		require.NoError(t, err)

		released, err := leases.Release(ctx, l.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, lease.StatusReleased, released.Status)

		// Releasing again is a no-op.
		again, err := leases.Release(ctx, l.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, lease.StatusReleased, again.Status)

		_, err = leases.Acquire(ctx, it.ID, "agent-2", models.AcquireLeaseRequest{
			Scope: "releasable", TTLSeconds: 60,
		})
		require.NoError(t, err)
	})

	t.Run("expired lease cannot be renewed", func(t *testing.T) {
		l, err := leases.Acquire(ctx, it.ID, "agent-1", models.AcquireLeaseRequest{
			Scope: "stale", TTLSeconds: 60,
		})
		require.NoError(t, err)
		err = l.Update().SetExpiresAt(time.Now().Add(-time.Minute)).Exec(ctx)
		require.NoError(t, err)

		_, err = leases.Renew(ctx, l.ID, "agent-1", 60)
		var conflict *LeaseConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("unknown lease is not found", func(t *testing.T) {
		_, err := leases.Renew(ctx, "no-such-lease", "agent-1", 60)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLeaseService_ExpireDue(t *testing.T) {
	leases, intents, eventSvc := newLeaseFixture(t)
	ctx := context.Background()

	it, err := intents.CreateIntent(ctx, "agent-1", models.CreateIntentRequest{Title: "swept"})
	require.NoError(t, err)

	l, err := leases.Acquire(ctx, it.ID, "agent-1", models.AcquireLeaseRequest{
		Scope: "swept-scope", TTLSeconds: 60,
	})
	require.NoError(t, err)
	err = l.Update().SetExpiresAt(time.Now().Add(-time.Minute)).Exec(ctx)
	require.NoError(t, err)

	expired, err := leases.ExpireDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	active, err := leases.List(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	page, err := eventSvc.ListEvents(ctx, it.ID, 1, 10)
	require.NoError(t, err)
	last := page.Events[len(page.Events)-1]
	assert.Equal(t, events.EventTypeLeaseExpired, last.EventType)
	assert.Equal(t, "agent-1", last.ActorAgentID)

	// A second sweep finds nothing.
	expired, err = leases.ExpireDue(ctx)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
