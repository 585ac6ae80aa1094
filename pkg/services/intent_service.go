package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/metrics"
	"github.com/openintent-io/openintent/pkg/models"
)

// terminalStatuses are statuses with no outgoing transitions. Mutations
// on a terminal intent are rejected.
var terminalStatuses = map[intent.Status]bool{
	intent.StatusCompleted: true,
	intent.StatusCancelled: true,
	intent.StatusFailed:    true,
}

// allowedTransitions is the intent status state machine.
var allowedTransitions = map[intent.Status][]intent.Status{
	intent.StatusPending: {intent.StatusActive, intent.StatusCancelled},
	intent.StatusActive:  {intent.StatusBlocked, intent.StatusCompleted, intent.StatusCancelled, intent.StatusFailed},
	intent.StatusBlocked: {intent.StatusActive, intent.StatusCompleted, intent.StatusCancelled, intent.StatusFailed},
}

func transitionAllowed(from, to intent.Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IntentService manages intent lifecycle, optimistic concurrency, and the
// per-intent event log appends that accompany every mutation.
type IntentService struct {
	client    *ent.Client
	publisher *events.Publisher

	// statusHook runs after a committed status change, outside the
	// transaction. Wired to aggregate recomputation at startup.
	statusHook func(ctx context.Context, intentID string)
}

// NewIntentService creates a new IntentService.
func NewIntentService(client *ent.Client, publisher *events.Publisher) *IntentService {
	return &IntentService{client: client, publisher: publisher}
}

// SetStatusHook registers a post-commit callback for status changes.
func (s *IntentService) SetStatusHook(hook func(ctx context.Context, intentID string)) {
	s.statusHook = hook
}

// CreateIntent creates an intent in PENDING at version 1 and appends the
// CREATED event at sequence 1. When an idempotency key is supplied and an
// intent with that key already exists, the existing intent is returned
// unchanged.
func (s *IntentService) CreateIntent(ctx context.Context, actor string, req models.CreateIntentRequest) (*ent.Intent, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.RetryPolicy != nil {
		if err := req.RetryPolicy.Validate(); err != nil {
			return nil, NewValidationError("retry_policy", err.Error())
		}
	}

	if req.IdempotencyKey != "" {
		existing, err := s.client.Intent.Query().
			Where(intent.IdempotencyKeyEQ(req.IdempotencyKey)).
			Only(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query idempotency key: %w", err)
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if req.ParentID != "" {
		parent, err := tx.Intent.Query().Where(intent.IDEQ(req.ParentID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("parent intent %s: %w", req.ParentID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to query parent: %w", err)
		}
		if terminalStatuses[parent.Status] {
			return nil, fmt.Errorf("parent intent %s: %w", req.ParentID, ErrTerminal)
		}
	}
	for _, dep := range req.DependsOn {
		exists, err := tx.Intent.Query().Where(intent.IDEQ(dep)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query dependency: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("dependency intent %s: %w", dep, ErrNotFound)
		}
	}

	id := uuid.New().String()
	builder := tx.Intent.Create().
		SetID(id).
		SetTitle(req.Title).
		SetCreatorAgentID(actor).
		SetStatus(intent.StatusPending).
		SetVersion(1)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.State != nil {
		builder.SetState(req.State)
	}
	if len(req.Constraints) > 0 {
		builder.SetConstraints(req.Constraints)
	}
	if req.ParentID != "" {
		builder.SetParentID(req.ParentID)
	}
	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
	}
	if req.RetryPolicy != nil {
		doc, err := req.RetryPolicy.Document()
		if err != nil {
			return nil, err
		}
		builder.SetRetryPolicy(doc)
	}
	if req.IdempotencyKey != "" {
		builder.SetIdempotencyKey(req.IdempotencyKey)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && req.IdempotencyKey != "" {
			// Lost the idempotency race. Return the winner.
			existing, qerr := s.client.Intent.Query().
				Where(intent.IdempotencyKeyEQ(req.IdempotencyKey)).
				Only(ctx)
			if qerr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create intent: %w", err)
	}

	entry, err := appendEvent(ctx, tx, id, events.EventTypeCreated, actor, map[string]any{
		"title":      req.Title,
		"parent_id":  req.ParentID,
		"depends_on": req.DependsOn,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(ctx, entry)
	return created, nil
}

// GetIntent retrieves an intent by ID.
func (s *IntentService) GetIntent(ctx context.Context, id string) (*ent.Intent, error) {
	it, err := s.client.Intent.Query().Where(intent.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query intent: %w", err)
	}
	return it, nil
}

// ListIntents returns intents matching the filters, newest first.
func (s *IntentService) ListIntents(ctx context.Context, filters models.IntentFilters) ([]*ent.Intent, error) {
	query := s.client.Intent.Query()

	if len(filters.Status) > 0 {
		statuses := make([]intent.Status, 0, len(filters.Status))
		for _, st := range filters.Status {
			statuses = append(statuses, intent.Status(strings.ToLower(st)))
		}
		query = query.Where(intent.StatusIn(statuses...))
	}
	if filters.ParentID != "" {
		query = query.Where(intent.ParentIDEQ(filters.ParentID))
	}
	if filters.Creator != "" {
		query = query.Where(intent.CreatorAgentIDEQ(filters.Creator))
	}

	limit := filters.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	items, err := query.
		Order(ent.Desc(intent.FieldCreatedAt)).
		Offset(filters.Offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}
	return items, nil
}

// UpdateState applies a shallow top-level merge (or full replacement) to
// the intent state under optimistic concurrency, bumps the version, and
// appends STATE_PATCHED.
func (s *IntentService) UpdateState(ctx context.Context, id, actor string, req models.PatchStateRequest) (*ent.Intent, error) {
	if !req.Replace && len(req.Patch) == 0 {
		return nil, NewValidationError("patch", "required")
	}

	var entry *models.EventEntry
	updated, err := s.mutate(ctx, id, req.ExpectedVersion, func(tx *ent.Tx, current *ent.Intent) (*ent.Intent, error) {
		var newState models.StateDocument
		if req.Replace {
			newState = req.Patch
			if newState == nil {
				newState = models.StateDocument{}
			}
		} else {
			newState = models.MergeState(current.State, req.Patch)
		}

		it, err := current.Update().
			SetState(newState).
			SetVersion(current.Version + 1).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update state: %w", err)
		}

		entry, err = appendEvent(ctx, tx, id, events.EventTypeStatePatched, actor,
			events.Document(events.StatePatchedPayload{
				Patch:      req.Patch,
				Replace:    req.Replace,
				NewVersion: it.Version,
			}))
		if err != nil {
			return nil, err
		}
		return it, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entry)
	return updated, nil
}

// SetStatus transitions the intent status under optimistic concurrency
// and appends STATUS_CHANGED.
func (s *IntentService) SetStatus(ctx context.Context, id, actor string, req models.SetStatusRequest) (*ent.Intent, error) {
	target := intent.Status(strings.ToLower(req.Status))
	if err := intent.StatusValidator(target); err != nil {
		return nil, NewValidationError("status", "unknown status "+req.Status)
	}

	var entry *models.EventEntry
	updated, err := s.mutate(ctx, id, req.ExpectedVersion, func(tx *ent.Tx, current *ent.Intent) (*ent.Intent, error) {
		if !transitionAllowed(current.Status, target) {
			return nil, &InvalidTransitionError{
				IntentID: id,
				From:     string(current.Status),
				To:       string(target),
			}
		}

		it, err := current.Update().
			SetStatus(target).
			SetVersion(current.Version + 1).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update status: %w", err)
		}

		entry, err = appendEvent(ctx, tx, id, events.EventTypeStatusChanged, actor,
			events.Document(events.StatusChangedPayload{
				From:   string(current.Status),
				To:     string(target),
				Reason: req.Reason,
			}))
		if err != nil {
			return nil, err
		}
		return it, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entry)
	if s.statusHook != nil {
		s.statusHook(ctx, id)
	}
	return updated, nil
}

// SetConstraints replaces the informational constraint list under
// optimistic concurrency and appends CONSTRAINTS_UPDATED.
func (s *IntentService) SetConstraints(ctx context.Context, id, actor string, req models.SetConstraintsRequest) (*ent.Intent, error) {
	var entry *models.EventEntry
	updated, err := s.mutate(ctx, id, req.ExpectedVersion, func(tx *ent.Tx, current *ent.Intent) (*ent.Intent, error) {
		it, err := current.Update().
			SetConstraints(req.Constraints).
			SetVersion(current.Version + 1).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update constraints: %w", err)
		}

		entry, err = appendEvent(ctx, tx, id, events.EventTypeConstraintsUpdated, actor,
			events.Document(events.ConstraintsUpdatedPayload{Constraints: req.Constraints}))
		if err != nil {
			return nil, err
		}
		return it, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entry)
	return updated, nil
}

// mutate runs fn against the locked intent row inside a transaction after
// the optimistic concurrency check. The row lock also serializes event
// sequence assignment for this intent.
func (s *IntentService) mutate(ctx context.Context, id string, expectedVersion int64, fn func(tx *ent.Tx, current *ent.Intent) (*ent.Intent, error)) (*ent.Intent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Intent.Query().
		Where(intent.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}

	if terminalStatuses[current.Status] {
		return nil, fmt.Errorf("intent %s (%s): %w", id, current.Status, ErrTerminal)
	}
	if current.Version != expectedVersion {
		metrics.VersionConflicts.Inc()
		return nil, &VersionConflictError{
			IntentID:        id,
			ExpectedVersion: expectedVersion,
			CurrentVersion:  current.Version,
		}
	}

	updated, err := fn(tx, current)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (s *IntentService) notify(ctx context.Context, entry *models.EventEntry) {
	if entry != nil && s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
}
