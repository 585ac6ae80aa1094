package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newPortfolioFixture(t *testing.T) (*PortfolioService, *IntentService, *GovernanceService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewPortfolioService(db.Client, nil),
		NewIntentService(db.Client, nil),
		NewGovernanceService(db.Client, nil),
		NewEventService(db.Client, nil)
}

func TestPortfolioService_Members(t *testing.T) {
	portfolios, intents, _, eventSvc := newPortfolioFixture(t)
	ctx := context.Background()

	p, err := portfolios.CreatePortfolio(ctx, "agent-1", models.CreatePortfolioRequest{Name: "q3 launch"})
	require.NoError(t, err)
	assert.Equal(t, portfolio.StatusActive, p.Status)

	first := mustCreate(t, intents, models.CreateIntentRequest{Title: "first"})
	second := mustCreate(t, intents, models.CreateIntentRequest{Title: "second"})

	t.Run("adding a member logs MEMBERSHIP_ADDED", func(t *testing.T) {
		m, err := portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{
			IntentID: first.ID, Role: "primary", Priority: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, m.IntentID)

		page, err := eventSvc.ListEvents(ctx, first.ID, 2, 10)
		require.NoError(t, err)
		require.NotEmpty(t, page.Events)
		assert.Equal(t, events.EventTypeMembershipAdded, page.Events[0].EventType)
	})

	t.Run("duplicate membership is rejected", func(t *testing.T) {
		_, err := portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: first.ID})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown intent and portfolio are not found", func(t *testing.T) {
		_, err := portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: "nope"})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = portfolios.AddMember(ctx, "nope", "agent-1", models.AddMemberRequest{IntentID: first.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("membership shows on the loaded portfolio", func(t *testing.T) {
		_, err := portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: second.ID})
		require.NoError(t, err)

		loaded, err := portfolios.GetPortfolio(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Edges.Members, 2)
	})

	t.Run("removing a member recomputes over the remainder", func(t *testing.T) {
		require.NoError(t, portfolios.RemoveMember(ctx, p.ID, second.ID))
		loaded, err := portfolios.GetPortfolio(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Edges.Members, 1)

		assert.ErrorIs(t, portfolios.RemoveMember(ctx, p.ID, second.ID), ErrNotFound)
	})
}

func TestPortfolioService_AggregateRecompute(t *testing.T) {
	portfolios, intents, _, eventSvc := newPortfolioFixture(t)
	ctx := context.Background()

	p, err := portfolios.CreatePortfolio(ctx, "agent-1", models.CreatePortfolioRequest{Name: "rollup"})
	require.NoError(t, err)

	a := mustCreate(t, intents, models.CreateIntentRequest{Title: "a"})
	b := mustCreate(t, intents, models.CreateIntentRequest{Title: "b"})
	_, err = portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: a.ID, Role: "primary"})
	require.NoError(t, err)
	_, err = portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: b.ID})
	require.NoError(t, err)

	mustSetStatus(t, intents, a.ID, a.Version, "active", "completed")
	portfolios.RecomputeForMember(ctx, a.ID)

	loaded, err := portfolios.GetPortfolio(ctx, p.ID)
	require.NoError(t, err)
	agg, err := models.AggregateStatusFromDocument(loaded.Aggregate)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, 2, agg.Total)
	assert.InDelta(t, 50.0, agg.CompletionPercentage, 0.01)

	// The trigger intent's log carries the AGGREGATE_CHANGED entry.
	page, err := eventSvc.ListEvents(ctx, a.ID, 1, 20)
	require.NoError(t, err)
	var found bool
	for _, e := range page.Events {
		if e.EventType == events.EventTypeAggregateChanged {
			found = true
			assert.Equal(t, p.ID, e.Payload["portfolio_id"])
		}
	}
	assert.True(t, found)
}

func TestPortfolioService_UpdateStatus(t *testing.T) {
	portfolios, _, _, _ := newPortfolioFixture(t)
	ctx := context.Background()

	p, err := portfolios.CreatePortfolio(ctx, "agent-1", models.CreatePortfolioRequest{Name: "finishing"})
	require.NoError(t, err)

	updated, err := portfolios.UpdateStatus(ctx, p.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, portfolio.StatusCompleted, updated.Status)

	_, err = portfolios.UpdateStatus(ctx, p.ID, "archived")
	assert.True(t, IsValidationError(err))

	_, err = portfolios.UpdateStatus(ctx, "no-such-portfolio", "active")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioService_CheckGovernance(t *testing.T) {
	portfolios, intents, governance, eventSvc := newPortfolioFixture(t)
	ctx := context.Background()

	p, err := portfolios.CreatePortfolio(ctx, "agent-1", models.CreatePortfolioRequest{
		Name: "budgeted",
		GovernancePolicy: &models.GovernancePolicy{
			MaxCostUSD: 10,
		},
	})
	require.NoError(t, err)

	anchor := mustCreate(t, intents, models.CreateIntentRequest{Title: "anchor"})
	other := mustCreate(t, intents, models.CreateIntentRequest{Title: "other"})
	_, err = portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: anchor.ID, Role: "primary"})
	require.NoError(t, err)
	_, err = portfolios.AddMember(ctx, p.ID, "agent-1", models.AddMemberRequest{IntentID: other.ID})
	require.NoError(t, err)

	t.Run("under budget emits nothing", func(t *testing.T) {
		_, err := governance.RecordCost(ctx, anchor.ID, "agent-1", models.RecordCostRequest{
			CostType: "tokens", Amount: 4,
		})
		require.NoError(t, err)

		require.NoError(t, portfolios.CheckGovernance(ctx, p.ID))
		assert.False(t, hasEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded))
	})

	t.Run("costs across members sum against the budget", func(t *testing.T) {
		_, err := governance.RecordCost(ctx, other.ID, "agent-1", models.RecordCostRequest{
			CostType: "api", Amount: 7,
		})
		require.NoError(t, err)

		require.NoError(t, portfolios.CheckGovernance(ctx, p.ID))
		assert.True(t, hasEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded))
	})

	t.Run("threshold event fires at most once", func(t *testing.T) {
		before := countEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded)
		require.NoError(t, portfolios.CheckGovernance(ctx, p.ID))
		after := countEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded)
		assert.Equal(t, before, after)
	})

	t.Run("dedup is per portfolio, not per anchor", func(t *testing.T) {
		// A second over-budget portfolio anchored on the same intent still
		// gets its own threshold event.
		second, err := portfolios.CreatePortfolio(ctx, "agent-1", models.CreatePortfolioRequest{
			Name:             "also budgeted",
			GovernancePolicy: &models.GovernancePolicy{MaxCostUSD: 1},
		})
		require.NoError(t, err)
		_, err = portfolios.AddMember(ctx, second.ID, "agent-1", models.AddMemberRequest{IntentID: anchor.ID, Role: "primary"})
		require.NoError(t, err)

		before := countEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded)
		require.NoError(t, portfolios.CheckGovernance(ctx, second.ID))
		assert.Equal(t, before+1, countEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded))

		page, err := eventSvc.ListEvents(ctx, anchor.ID, 1, 500)
		require.NoError(t, err)
		seen := map[any]int{}
		for _, e := range page.Events {
			if e.EventType == events.EventTypeCostThresholdExceeded {
				seen[e.Payload["portfolio_id"]]++
			}
		}
		assert.Equal(t, 1, seen[p.ID])
		assert.Equal(t, 1, seen[second.ID])

		// Re-checking the second portfolio stays deduplicated too.
		require.NoError(t, portfolios.CheckGovernance(ctx, second.ID))
		assert.Equal(t, before+1, countEventType(t, eventSvc, anchor.ID, events.EventTypeCostThresholdExceeded))
	})
}

func hasEventType(t *testing.T, eventSvc *EventService, intentID, eventType string) bool {
	t.Helper()
	return countEventType(t, eventSvc, intentID, eventType) > 0
}

func countEventType(t *testing.T, eventSvc *EventService, intentID, eventType string) int {
	t.Helper()
	page, err := eventSvc.ListEvents(context.Background(), intentID, 1, 500)
	require.NoError(t, err)
	n := 0
	for _, e := range page.Events {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}
