package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newRetryFixture(t *testing.T) (*RetryService, *IntentService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewRetryService(db.Client, nil),
		NewIntentService(db.Client, nil),
		NewEventService(db.Client, nil)
}

func exponentialPolicy(threshold int) models.RetryPolicy {
	return models.RetryPolicy{
		Strategy:         models.RetryExponential,
		BaseDelayMs:      1000,
		MaxDelayMs:       60000,
		FailureThreshold: threshold,
	}
}

func TestRetryService_SetPolicy(t *testing.T) {
	retries, intents, eventSvc := newRetryFixture(t)
	ctx := context.Background()

	it := mustCreate(t, intents, models.CreateIntentRequest{Title: "flaky"})

	updated, err := retries.SetPolicy(ctx, it.ID, "agent-1", models.SetRetryPolicyRequest{
		ExpectedVersion: 1,
		Policy:          exponentialPolicy(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	stored, err := models.RetryPolicyFromDocument(updated.RetryPolicy)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 3, stored.FailureThreshold)

	assert.True(t, hasEventType(t, eventSvc, it.ID, events.EventTypeRetryPolicySet))

	t.Run("stale version conflicts", func(t *testing.T) {
		_, err := retries.SetPolicy(ctx, it.ID, "agent-1", models.SetRetryPolicyRequest{
			ExpectedVersion: 1,
			Policy:          exponentialPolicy(3),
		})
		var conflict *VersionConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("invalid policy rejected", func(t *testing.T) {
		_, err := retries.SetPolicy(ctx, it.ID, "agent-1", models.SetRetryPolicyRequest{
			ExpectedVersion: 2,
			Policy:          models.RetryPolicy{Strategy: "quadratic"},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestRetryService_RecordFailure(t *testing.T) {
	retries, intents, eventSvc := newRetryFixture(t)
	ctx := context.Background()

	t.Run("recoverable failures back off until the threshold", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{
			Title: "retried", RetryPolicy: ptrPolicy(exponentialPolicy(3)),
		})
		mustSetStatus(t, intents, it.ID, it.Version, "active")

		// Attempts 1 and 2 schedule retries with exponential delays.
		for i, wantDelay := range []int64{1000, 2000} {
			attempt := i + 1
			record, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
				ErrorType:    "rate_limit",
				ErrorMessage: "upstream 429",
				Recoverable:  true,
			})
			require.NoError(t, err)
			assert.Equal(t, attempt, record.AttemptNumber)

			page, err := eventSvc.ListEvents(ctx, it.ID, 1, 100)
			require.NoError(t, err)
			last := page.Events[len(page.Events)-1]
			require.Equal(t, events.EventTypeRetryScheduled, last.EventType)
			assert.EqualValues(t, wantDelay, last.Payload["delay_ms"])
		}

		current, err := intents.GetIntent(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusActive, current.Status)
		assert.Equal(t, 2, current.AttemptCount)

		// Attempt 3 hits the threshold: RETRY_EXHAUSTED then FAILED.
		_, err = retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
			ErrorType:   "rate_limit",
			Recoverable: true,
		})
		require.NoError(t, err)

		final, err := intents.GetIntent(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusFailed, final.Status)
		assert.True(t, hasEventType(t, eventSvc, it.ID, events.EventTypeRetryExhausted))
	})

	t.Run("non-recoverable failure exhausts immediately", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{
			Title: "fatal", RetryPolicy: ptrPolicy(exponentialPolicy(5)),
		})
		mustSetStatus(t, intents, it.ID, it.Version, "active")

		_, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
			ErrorType:   "invariant_violation",
			Recoverable: false,
		})
		require.NoError(t, err)

		final, err := intents.GetIntent(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusFailed, final.Status)
	})

	t.Run("no policy means no retries", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{Title: "unprotected"})
		mustSetStatus(t, intents, it.ID, it.Version, "active")

		_, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
			ErrorType:   "timeout",
			Recoverable: true,
		})
		require.NoError(t, err)

		final, err := intents.GetIntent(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusFailed, final.Status)
	})

	t.Run("pending intent records exhaustion without failing", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{Title: "unstarted"})

		_, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
			ErrorType:   "invariant_violation",
			Recoverable: false,
		})
		require.NoError(t, err)

		final, err := intents.GetIntent(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusPending, final.Status)
		assert.Equal(t, 1, final.AttemptCount)
		assert.True(t, hasEventType(t, eventSvc, it.ID, events.EventTypeRetryExhausted))
		assert.False(t, hasEventType(t, eventSvc, it.ID, events.EventTypeStatusChanged))
	})

	t.Run("terminal intent rejects new failures", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{Title: "settled"})
		completeIntent(t, intents, it.ID, it.Version)

		_, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
			ErrorType: "timeout",
		})
		assert.ErrorIs(t, err, ErrTerminal)
	})

	t.Run("failure history lists in attempt order", func(t *testing.T) {
		it := mustCreate(t, intents, models.CreateIntentRequest{
			Title: "history", RetryPolicy: ptrPolicy(exponentialPolicy(5)),
		})
		mustSetStatus(t, intents, it.ID, it.Version, "active")

		for i := 0; i < 3; i++ {
			_, err := retries.RecordFailure(ctx, it.ID, "agent-1", models.RecordFailureRequest{
				ErrorType: "timeout", Recoverable: true,
			})
			require.NoError(t, err)
		}

		records, err := retries.ListFailures(ctx, it.ID)
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, r := range records {
			assert.Equal(t, i+1, r.AttemptNumber)
		}
	})
}

func TestRetryService_ReconcileExhausted(t *testing.T) {
	retries, intents, eventSvc := newRetryFixture(t)
	ctx := context.Background()

	// An intent whose attempt count already crossed the threshold but
	// whose FAILED transition never landed, as after a crash between the
	// failure write and the status update.
	stuck := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "stuck", RetryPolicy: ptrPolicy(exponentialPolicy(2)),
	})
	mustSetStatus(t, intents, stuck.ID, stuck.Version, "active")
	err := stuck.Update().SetAttemptCount(2).Exec(ctx)
	require.NoError(t, err)

	// An intent mid-retry that must be left alone.
	healthy := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "mid-retry", RetryPolicy: ptrPolicy(exponentialPolicy(5)),
	})
	mustSetStatus(t, intents, healthy.ID, healthy.Version, "active")
	_, err = retries.RecordFailure(ctx, healthy.ID, "agent-1", models.RecordFailureRequest{
		ErrorType: "timeout", Recoverable: true,
	})
	require.NoError(t, err)

	// A pending intent never started, so there is nothing to finalize even
	// when its recorded attempts crossed the threshold.
	unstarted := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "unstarted", RetryPolicy: ptrPolicy(exponentialPolicy(2)),
	})
	err = unstarted.Update().SetAttemptCount(2).Exec(ctx)
	require.NoError(t, err)

	reconciled, err := retries.ReconcileExhausted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reconciled)

	finalStuck, err := intents.GetIntent(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, intent.StatusFailed, finalStuck.Status)
	assert.True(t, hasEventType(t, eventSvc, stuck.ID, events.EventTypeRetryExhausted))

	finalHealthy, err := intents.GetIntent(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, intent.StatusActive, finalHealthy.Status)

	finalUnstarted, err := intents.GetIntent(ctx, unstarted.ID)
	require.NoError(t, err)
	assert.Equal(t, intent.StatusPending, finalUnstarted.Status)

	// Idempotent: a second pass finds nothing.
	reconciled, err = retries.ReconcileExhausted(ctx)
	require.NoError(t, err)
	assert.Zero(t, reconciled)
}

func ptrPolicy(p models.RetryPolicy) *models.RetryPolicy {
	return &p
}
