package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newGovernanceFixture(t *testing.T) (*GovernanceService, *IntentService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewGovernanceService(db.Client, nil),
		NewIntentService(db.Client, nil),
		NewEventService(db.Client, nil)
}

func TestGovernanceService_Costs(t *testing.T) {
	governance, intents, eventSvc := newGovernanceFixture(t)
	ctx := context.Background()

	it := mustCreate(t, intents, models.CreateIntentRequest{Title: "metered"})

	t.Run("records entries and totals per currency", func(t *testing.T) {
		_, err := governance.RecordCost(ctx, it.ID, "agent-1", models.RecordCostRequest{
			CostType: "tokens", Amount: 1.25, Description: "prompt tokens",
		})
		require.NoError(t, err)
		_, err = governance.RecordCost(ctx, it.ID, "agent-1", models.RecordCostRequest{
			CostType: "api", Amount: 0.75,
		})
		require.NoError(t, err)
		_, err = governance.RecordCost(ctx, it.ID, "agent-2", models.RecordCostRequest{
			CostType: "compute", Amount: 3, Currency: "EUR",
		})
		require.NoError(t, err)

		summary, err := governance.ListCosts(ctx, it.ID)
		require.NoError(t, err)
		assert.Len(t, summary.Entries, 3)
		assert.InDelta(t, 2.0, summary.Totals["USD"], 0.001)
		assert.InDelta(t, 3.0, summary.Totals["EUR"], 0.001)

		assert.Equal(t, 3, countEventType(t, eventSvc, it.ID, events.EventTypeCostRecorded))
	})

	t.Run("rejects unknown type and negative amount", func(t *testing.T) {
		_, err := governance.RecordCost(ctx, it.ID, "agent-1", models.RecordCostRequest{
			CostType: "goodwill", Amount: 1,
		})
		assert.True(t, IsValidationError(err))
		_, err = governance.RecordCost(ctx, it.ID, "agent-1", models.RecordCostRequest{
			CostType: "tokens", Amount: -1,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("terminal intent still accepts costs", func(t *testing.T) {
		done := mustCreate(t, intents, models.CreateIntentRequest{Title: "billed late"})
		completeIntent(t, intents, done.ID, done.Version)

		_, err := governance.RecordCost(ctx, done.ID, "agent-1", models.RecordCostRequest{
			CostType: "tokens", Amount: 0.1,
		})
		require.NoError(t, err)
	})
}

func TestGovernanceService_Attachments(t *testing.T) {
	governance, intents, eventSvc := newGovernanceFixture(t)
	ctx := context.Background()

	it := mustCreate(t, intents, models.CreateIntentRequest{Title: "documented"})
	content := []byte("quarterly findings\n")

	t.Run("stores the blob with its digest", func(t *testing.T) {
		a, err := governance.CreateAttachment(ctx, it.ID, "agent-1", models.CreateAttachmentRequest{
			Filename:    "findings.txt",
			ContentType: "text/plain",
			Content:     content,
		})
		require.NoError(t, err)

		digest := sha256.Sum256(content)
		assert.Equal(t, hex.EncodeToString(digest[:]), a.Sha256)
		assert.Equal(t, int64(len(content)), a.Size)

		fetched, err := governance.GetAttachment(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, content, fetched.Blob)

		assert.True(t, hasEventType(t, eventSvc, it.ID, events.EventTypeAttachmentCreated))
	})

	t.Run("listing omits blobs", func(t *testing.T) {
		items, err := governance.ListAttachments(ctx, it.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Empty(t, items[0].Blob)
		assert.Equal(t, "findings.txt", items[0].Filename)
	})

	t.Run("enforces the size cap", func(t *testing.T) {
		_, err := governance.CreateAttachment(ctx, it.ID, "agent-1", models.CreateAttachmentRequest{
			Filename: "huge.bin",
			Content:  bytes.Repeat([]byte("x"), config.MaxAttachmentSize+1),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires filename and content", func(t *testing.T) {
		_, err := governance.CreateAttachment(ctx, it.ID, "agent-1", models.CreateAttachmentRequest{
			Content: content,
		})
		assert.True(t, IsValidationError(err))
		_, err = governance.CreateAttachment(ctx, it.ID, "agent-1", models.CreateAttachmentRequest{
			Filename: "empty.txt",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestGovernanceService_CommentsAndArbitration(t *testing.T) {
	governance, intents, eventSvc := newGovernanceFixture(t)
	ctx := context.Background()

	it := mustCreate(t, intents, models.CreateIntentRequest{Title: "discussed"})

	t.Run("comment lives in the log", func(t *testing.T) {
		entry, err := governance.AddComment(ctx, it.ID, "agent-1", "looks wrong to me")
		require.NoError(t, err)
		assert.Equal(t, events.EventTypeComment, entry.EventType)
		assert.Equal(t, "looks wrong to me", entry.Payload["text"])

		_, err = governance.AddComment(ctx, it.ID, "agent-1", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("arbitration request carries question and options", func(t *testing.T) {
		entry, err := governance.RequestArbitration(ctx, it.ID, "agent-1", models.ArbitrationRequest{
			Question: "retry or abandon?",
			Options:  []string{"retry", "abandon"},
		})
		require.NoError(t, err)
		assert.Equal(t, events.EventTypeArbitrationRequested, entry.EventType)
		assert.Equal(t, "retry or abandon?", entry.Payload["question"])
	})

	t.Run("decision with unblock reactivates a blocked intent", func(t *testing.T) {
		blocked := mustCreate(t, intents, models.CreateIntentRequest{Title: "paused"})
		version := mustSetStatus(t, intents, blocked.ID, blocked.Version, "active", "blocked")

		entry, err := governance.RecordDecision(ctx, blocked.ID, "arbiter", models.DecisionRequest{
			Decision:        "retry",
			Rationale:       "transient upstream outage",
			Unblock:         true,
			ExpectedVersion: version,
		})
		require.NoError(t, err)
		assert.Equal(t, events.EventTypeDecisionRecorded, entry.EventType)

		current, err := intents.GetIntent(ctx, blocked.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.StatusActive, current.Status)
		assert.Equal(t, version+1, current.Version)
		assert.True(t, hasEventType(t, eventSvc, blocked.ID, events.EventTypeStatusChanged))
	})

	t.Run("unblock on a non-blocked intent is rejected", func(t *testing.T) {
		active := mustCreate(t, intents, models.CreateIntentRequest{Title: "running"})
		version := mustSetStatus(t, intents, active.ID, active.Version, "active")

		_, err := governance.RecordDecision(ctx, active.ID, "arbiter", models.DecisionRequest{
			Decision:        "retry",
			Unblock:         true,
			ExpectedVersion: version,
		})
		var invalid *InvalidTransitionError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unblock enforces the version check", func(t *testing.T) {
		blocked := mustCreate(t, intents, models.CreateIntentRequest{Title: "contended"})
		mustSetStatus(t, intents, blocked.ID, blocked.Version, "active", "blocked")

		_, err := governance.RecordDecision(ctx, blocked.ID, "arbiter", models.DecisionRequest{
			Decision:        "retry",
			Unblock:         true,
			ExpectedVersion: 1,
		})
		var conflict *VersionConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(3), conflict.CurrentVersion)
	})

	t.Run("decision without unblock records only the event", func(t *testing.T) {
		entry, err := governance.RecordDecision(ctx, it.ID, "arbiter", models.DecisionRequest{
			Decision: "abandon",
		})
		require.NoError(t, err)
		assert.Equal(t, "abandon", entry.Payload["decision"])
	})
}
