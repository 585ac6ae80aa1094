package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
)

// maxGraphDepth bounds hierarchy traversal. Parent edges are create-only
// so cycles cannot form, but a depth cap keeps a corrupted tree from
// looping the server.
const maxGraphDepth = 100

// GraphService provides the hierarchy view of intents: transitive
// descendants, dependency readiness, and rolled-up aggregate status.
type GraphService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewGraphService creates a new GraphService.
func NewGraphService(client *ent.Client, publisher *events.Publisher) *GraphService {
	return &GraphService{client: client, publisher: publisher}
}

// GetGraph returns the root and all its transitive descendants with the
// aggregate completion summary.
func (s *GraphService) GetGraph(ctx context.Context, rootID string) (*models.IntentGraph, error) {
	root, err := s.client.Intent.Query().Where(intent.IDEQ(rootID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query root intent: %w", err)
	}

	nodes, err := s.collectDescendants(ctx, root)
	if err != nil {
		return nil, err
	}

	graph := &models.IntentGraph{
		RootID:    rootID,
		Nodes:     make([]models.GraphNode, 0, len(nodes)),
		Aggregate: computeAggregate(nodes),
	}
	for _, n := range nodes {
		node := models.GraphNode{
			ID:        n.it.ID,
			Title:     n.it.Title,
			Status:    string(n.it.Status),
			DependsOn: n.it.DependsOn,
			Depth:     n.depth,
		}
		if n.it.ParentID != nil {
			node.ParentID = *n.it.ParentID
		}
		graph.Nodes = append(graph.Nodes, node)
	}
	return graph, nil
}

// Readiness summarizes which children of an intent can start: a PENDING
// child is ready when every intent it depends on is COMPLETED.
type Readiness struct {
	Ready   []string            `json:"ready"`
	Blocked map[string][]string `json:"blocked"` // child id -> unmet dependency ids
}

// ChildReadiness computes dependency readiness over all transitive
// descendants of an intent: every PENDING descendant lands in Ready or
// Blocked, nothing falls through.
func (s *GraphService) ChildReadiness(ctx context.Context, rootID string) (*Readiness, error) {
	root, err := s.client.Intent.Query().Where(intent.IDEQ(rootID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query intent: %w", err)
	}

	nodes, err := s.collectDescendants(ctx, root)
	if err != nil {
		return nil, err
	}

	r := &Readiness{Ready: []string{}, Blocked: map[string][]string{}}
	for _, n := range nodes {
		if n.it.ID == rootID || n.it.Status != intent.StatusPending {
			continue
		}
		unmet, err := s.unmetDependencies(ctx, n.it)
		if err != nil {
			return nil, err
		}
		if len(unmet) == 0 {
			r.Ready = append(r.Ready, n.it.ID)
		} else {
			r.Blocked[n.it.ID] = unmet
		}
	}
	return r, nil
}

func (s *GraphService) unmetDependencies(ctx context.Context, it *ent.Intent) ([]string, error) {
	if len(it.DependsOn) == 0 {
		return nil, nil
	}
	deps, err := s.client.Intent.Query().
		Where(intent.IDIn(it.DependsOn...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query dependencies: %w", err)
	}
	completed := make(map[string]bool, len(deps))
	for _, d := range deps {
		completed[d.ID] = d.Status == intent.StatusCompleted
	}
	var unmet []string
	for _, id := range it.DependsOn {
		if !completed[id] {
			unmet = append(unmet, id)
		}
	}
	return unmet, nil
}

// RecomputeForIntent walks to the hierarchy root of an intent, recomputes
// the aggregate over the whole tree, persists it on the root when it
// changed, and emits AGGREGATE_CHANGED. Used as the post-status-change
// hook and by the background recomputer.
func (s *GraphService) RecomputeForIntent(ctx context.Context, intentID string) {
	rootID, err := s.rootOf(ctx, intentID)
	if err != nil {
		slog.Warn("Aggregate recompute skipped", "intent_id", intentID, "error", err)
		return
	}
	if err := s.recomputeRoot(ctx, rootID); err != nil {
		slog.Warn("Aggregate recompute failed", "root_id", rootID, "error", err)
	}
}

func (s *GraphService) rootOf(ctx context.Context, intentID string) (string, error) {
	id := intentID
	for depth := 0; depth < maxGraphDepth; depth++ {
		it, err := s.client.Intent.Query().Where(intent.IDEQ(id)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return "", ErrNotFound
			}
			return "", fmt.Errorf("failed to query intent: %w", err)
		}
		if it.ParentID == nil || *it.ParentID == "" {
			return it.ID, nil
		}
		id = *it.ParentID
	}
	return "", fmt.Errorf("parent chain exceeds depth %d", maxGraphDepth)
}

func (s *GraphService) recomputeRoot(ctx context.Context, rootID string) error {
	root, err := s.client.Intent.Query().Where(intent.IDEQ(rootID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query root: %w", err)
	}
	// A lone intent has no aggregate.
	nodes, err := s.collectDescendants(ctx, root)
	if err != nil {
		return err
	}
	if len(nodes) <= 1 {
		return nil
	}

	agg := computeAggregate(nodes)
	previous, err := aggregateFromDocument(root.Aggregate)
	if err != nil {
		return err
	}
	if agg.Equal(previous) {
		return nil
	}

	doc, err := agg.Document()
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := tx.Intent.Query().Where(intent.IDEQ(rootID)).ForUpdate().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock root: %w", err)
	}
	// The aggregate column is derived data and does not bump the version.
	if _, err := locked.Update().SetAggregate(doc).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist aggregate: %w", err)
	}

	entry, err := appendEvent(ctx, tx, rootID, events.EventTypeAggregateChanged, "system",
		events.Document(events.AggregateChangedPayload{Aggregate: doc}))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
	return nil
}

type graphNode struct {
	it    *ent.Intent
	depth int
}

// collectDescendants breadth-first walks children of the root, root
// included.
func (s *GraphService) collectDescendants(ctx context.Context, root *ent.Intent) ([]graphNode, error) {
	nodes := []graphNode{{it: root, depth: 0}}
	frontier := []string{root.ID}
	seen := map[string]bool{root.ID: true}

	for depth := 1; depth <= maxGraphDepth && len(frontier) > 0; depth++ {
		children, err := s.client.Intent.Query().
			Where(intent.ParentIDIn(frontier...)).
			Order(ent.Asc(intent.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query descendants: %w", err)
		}

		frontier = frontier[:0]
		for _, child := range children {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			nodes = append(nodes, graphNode{it: child, depth: depth})
			frontier = append(frontier, child.ID)
		}
	}
	return nodes, nil
}

// computeAggregate rolls up the status histogram, completion percentage,
// and the fraction of intents that can still reach COMPLETED. FAILED and
// CANCELLED intents poison their transitive dependents.
func computeAggregate(nodes []graphNode) models.AggregateStatus {
	agg := models.AggregateStatus{
		Total:    len(nodes),
		ByStatus: make(map[string]int),
	}
	if len(nodes) == 0 {
		return agg
	}

	completed := 0
	for _, n := range nodes {
		agg.ByStatus[string(n.it.Status)]++
		if n.it.Status == intent.StatusCompleted {
			completed++
		}
	}
	agg.CompletionPercentage = math.Round(100 * float64(completed) / float64(len(nodes)))

	// Propagate poison along depends_on edges, restricted to the
	// collected set.
	inSet := make(map[string]*ent.Intent, len(nodes))
	dependents := make(map[string][]string)
	for _, n := range nodes {
		inSet[n.it.ID] = n.it
	}
	for _, n := range nodes {
		for _, dep := range n.it.DependsOn {
			if _, ok := inSet[dep]; ok {
				dependents[dep] = append(dependents[dep], n.it.ID)
			}
		}
	}

	poisoned := make(map[string]bool)
	var queue []string
	for _, n := range nodes {
		if n.it.Status == intent.StatusFailed || n.it.Status == intent.StatusCancelled {
			poisoned[n.it.ID] = true
			queue = append(queue, n.it.ID)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, dep := range dependents[id] {
			if poisoned[dep] {
				continue
			}
			// A dependent that already completed is not retroactively
			// poisoned.
			if inSet[dep].Status == intent.StatusCompleted {
				continue
			}
			poisoned[dep] = true
			queue = append(queue, dep)
		}
	}

	reachable := 0
	for _, n := range nodes {
		if n.it.Status == intent.StatusCompleted {
			reachable++
			continue
		}
		if poisoned[n.it.ID] {
			continue
		}
		reachable++
	}
	agg.ReachableCompletion = float64(reachable) / float64(len(nodes))
	return agg
}

func aggregateFromDocument(doc map[string]any) (*models.AggregateStatus, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	return models.AggregateStatusFromDocument(doc)
}
