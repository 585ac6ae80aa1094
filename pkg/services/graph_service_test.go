package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/pkg/models"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newGraphFixture(t *testing.T) (*GraphService, *IntentService, *EventService) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewGraphService(db.Client, nil),
		NewIntentService(db.Client, nil),
		NewEventService(db.Client, nil)
}

func mustCreate(t *testing.T, svc *IntentService, req models.CreateIntentRequest) *ent.Intent {
	t.Helper()
	it, err := svc.CreateIntent(context.Background(), "test-agent", req)
	require.NoError(t, err)
	return it
}

func mustSetStatus(t *testing.T, svc *IntentService, id string, version int64, statuses ...string) int64 {
	t.Helper()
	for _, status := range statuses {
		it, err := svc.SetStatus(context.Background(), id, "test-agent", models.SetStatusRequest{
			ExpectedVersion: version, Status: status,
		})
		require.NoError(t, err)
		version = it.Version
	}
	return version
}

func TestGraphService_GetGraph(t *testing.T) {
	graph, intents, _ := newGraphFixture(t)
	ctx := context.Background()

	root := mustCreate(t, intents, models.CreateIntentRequest{Title: "root"})
	childA := mustCreate(t, intents, models.CreateIntentRequest{Title: "child a", ParentID: root.ID})
	childB := mustCreate(t, intents, models.CreateIntentRequest{Title: "child b", ParentID: root.ID})
	grandchild := mustCreate(t, intents, models.CreateIntentRequest{Title: "grandchild", ParentID: childA.ID})

	mustSetStatus(t, intents, childA.ID, childA.Version, "active", "completed")

	t.Run("collects transitive descendants with depths", func(t *testing.T) {
		g, err := graph.GetGraph(ctx, root.ID)
		require.NoError(t, err)

		require.Len(t, g.Nodes, 4)
		depths := make(map[string]int, 4)
		for _, n := range g.Nodes {
			depths[n.ID] = n.Depth
		}
		assert.Equal(t, 0, depths[root.ID])
		assert.Equal(t, 1, depths[childA.ID])
		assert.Equal(t, 1, depths[childB.ID])
		assert.Equal(t, 2, depths[grandchild.ID])
	})

	t.Run("aggregate rolls up the histogram", func(t *testing.T) {
		g, err := graph.GetGraph(ctx, root.ID)
		require.NoError(t, err)

		assert.Equal(t, 4, g.Aggregate.Total)
		assert.Equal(t, 1, g.Aggregate.ByStatus["completed"])
		assert.Equal(t, 3, g.Aggregate.ByStatus["pending"])
		assert.InDelta(t, 25.0, g.Aggregate.CompletionPercentage, 0.01)
		assert.InDelta(t, 1.0, g.Aggregate.ReachableCompletion, 0.01)
	})

	t.Run("unknown root is not found", func(t *testing.T) {
		_, err := graph.GetGraph(ctx, "no-such-intent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGraphService_ChildReadiness(t *testing.T) {
	graph, intents, _ := newGraphFixture(t)
	ctx := context.Background()

	root := mustCreate(t, intents, models.CreateIntentRequest{Title: "plan"})
	fetch := mustCreate(t, intents, models.CreateIntentRequest{Title: "fetch", ParentID: root.ID})
	analyze := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "analyze", ParentID: root.ID, DependsOn: []string{fetch.ID},
	})
	report := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "report", ParentID: root.ID, DependsOn: []string{fetch.ID, analyze.ID},
	})
	upload := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "upload", ParentID: report.ID, DependsOn: []string{report.ID},
	})

	t.Run("pending descendant with unmet deps is blocked", func(t *testing.T) {
		r, err := graph.ChildReadiness(ctx, root.ID)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{fetch.ID}, r.Ready)
		assert.Equal(t, []string{fetch.ID}, r.Blocked[analyze.ID])
		assert.ElementsMatch(t, []string{fetch.ID, analyze.ID}, r.Blocked[report.ID])
		// Nested descendants are classified too, not just direct children.
		assert.Equal(t, []string{report.ID}, r.Blocked[upload.ID])
	})

	t.Run("ready and blocked partition the pending descendants", func(t *testing.T) {
		r, err := graph.ChildReadiness(ctx, root.ID)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, id := range r.Ready {
			seen[id] = true
		}
		for id := range r.Blocked {
			assert.False(t, seen[id], "intent %s in both ready and blocked", id)
			seen[id] = true
		}
		assert.Len(t, seen, 4)
	})

	t.Run("completing a dependency unblocks dependents", func(t *testing.T) {
		mustSetStatus(t, intents, fetch.ID, fetch.Version, "active", "completed")

		r, err := graph.ChildReadiness(ctx, root.ID)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{analyze.ID}, r.Ready)
		assert.Equal(t, []string{analyze.ID}, r.Blocked[report.ID])
		assert.Equal(t, []string{report.ID}, r.Blocked[upload.ID])
		// fetch itself is no longer pending, so it leaves the readiness view.
		assert.NotContains(t, r.Ready, fetch.ID)
	})

	t.Run("unknown parent is not found", func(t *testing.T) {
		_, err := graph.ChildReadiness(ctx, "no-such-intent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGraphService_CompletionRounding(t *testing.T) {
	graph, intents, _ := newGraphFixture(t)
	ctx := context.Background()

	root := mustCreate(t, intents, models.CreateIntentRequest{Title: "thirds"})
	done := mustCreate(t, intents, models.CreateIntentRequest{Title: "done", ParentID: root.ID})
	mustCreate(t, intents, models.CreateIntentRequest{Title: "open", ParentID: root.ID})
	mustSetStatus(t, intents, done.ID, done.Version, "active", "completed")

	g, err := graph.GetGraph(ctx, root.ID)
	require.NoError(t, err)

	// 1 of 3 completed rounds to a whole percentage.
	assert.Equal(t, 33.0, g.Aggregate.CompletionPercentage)
}

func TestGraphService_PoisonPropagation(t *testing.T) {
	graph, intents, _ := newGraphFixture(t)
	ctx := context.Background()

	root := mustCreate(t, intents, models.CreateIntentRequest{Title: "pipeline"})
	broken := mustCreate(t, intents, models.CreateIntentRequest{Title: "broken step", ParentID: root.ID})
	dependent := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "dependent", ParentID: root.ID, DependsOn: []string{broken.ID},
	})
	transitive := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "transitive", ParentID: root.ID, DependsOn: []string{dependent.ID},
	})
	survivor := mustCreate(t, intents, models.CreateIntentRequest{
		Title: "already done", ParentID: root.ID, DependsOn: []string{broken.ID},
	})
	mustSetStatus(t, intents, survivor.ID, survivor.Version, "active", "completed")
	mustSetStatus(t, intents, broken.ID, broken.Version, "active", "failed")

	g, err := graph.GetGraph(ctx, root.ID)
	require.NoError(t, err)

	// Root and the completed survivor can still finish; broken and its
	// transitive dependents cannot. 2 of 5 remain reachable.
	assert.Equal(t, 5, g.Aggregate.Total)
	assert.InDelta(t, 2.0/5.0, g.Aggregate.ReachableCompletion, 0.01)

	statuses := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		statuses[n.ID] = n.Status
	}
	assert.Equal(t, "failed", statuses[broken.ID])
	assert.Equal(t, "pending", statuses[dependent.ID])
	assert.Equal(t, "pending", statuses[transitive.ID])
}

func TestGraphService_RecomputeForIntent(t *testing.T) {
	graph, intents, eventSvc := newGraphFixture(t)
	ctx := context.Background()

	root := mustCreate(t, intents, models.CreateIntentRequest{Title: "tree"})
	child := mustCreate(t, intents, models.CreateIntentRequest{Title: "leaf", ParentID: root.ID})
	mustSetStatus(t, intents, child.ID, child.Version, "active", "completed")

	// Recompute from a leaf walks up to the root and persists there.
	graph.RecomputeForIntent(ctx, child.ID)

	stored, err := intents.GetIntent(ctx, root.ID)
	require.NoError(t, err)
	agg, err := models.AggregateStatusFromDocument(stored.Aggregate)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, 2, agg.Total)
	assert.InDelta(t, 50.0, agg.CompletionPercentage, 0.01)

	page, err := eventSvc.ListEvents(ctx, root.ID, 1, 20)
	require.NoError(t, err)
	last := page.Events[len(page.Events)-1]
	assert.Equal(t, "AGGREGATE_CHANGED", last.EventType)
	assert.Equal(t, "system", last.ActorAgentID)

	// An unchanged aggregate does not append a second event.
	graph.RecomputeForIntent(ctx, child.ID)
	again, err := eventSvc.ListEvents(ctx, root.ID, 1, 20)
	require.NoError(t, err)
	assert.Len(t, again.Events, len(page.Events))
}
