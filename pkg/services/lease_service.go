package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/metrics"
	"github.com/openintent-io/openintent/pkg/models"
)

// LeaseService manages TTL-bounded scope-exclusive work leases. At most
// one ACTIVE lease exists per (intent, scope); the partial unique index
// enforces what the transaction logic serializes.
type LeaseService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewLeaseService creates a new LeaseService.
func NewLeaseService(client *ent.Client, publisher *events.Publisher) *LeaseService {
	return &LeaseService{client: client, publisher: publisher}
}

// Acquire grants a lease on (intent, scope) for the clamped TTL. If an
// unexpired ACTIVE lease already covers the pair, the call fails with a
// LeaseConflictError carrying the holder and expiry. An expired ACTIVE
// lease is swept lazily and does not block acquisition.
func (s *LeaseService) Acquire(ctx context.Context, intentID, actor string, req models.AcquireLeaseRequest) (*ent.Lease, error) {
	if req.Scope == "" {
		return nil, NewValidationError("scope", "required")
	}
	if req.TTLSeconds <= 0 {
		return nil, NewValidationError("ttl_seconds", "must be positive")
	}
	ttl := config.ClampLeaseTTL(time.Duration(req.TTLSeconds) * time.Second)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// The intent row lock serializes lease decisions and event sequence
	// assignment for this intent.
	it, err := tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}
	if terminalStatuses[it.Status] {
		return nil, fmt.Errorf("intent %s (%s): %w", intentID, it.Status, ErrTerminal)
	}

	now := time.Now()
	existing, err := tx.Lease.Query().
		Where(
			lease.IntentIDEQ(intentID),
			lease.ScopeEQ(req.Scope),
			lease.StatusEQ(lease.StatusActive),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active lease: %w", err)
	}

	var notifications []models.EventEntry
	if existing != nil {
		if existing.ExpiresAt.After(now) {
			return nil, &LeaseConflictError{
				IntentID:      intentID,
				Scope:         req.Scope,
				HolderAgentID: existing.HolderAgentID,
				ExpiresAt:     existing.ExpiresAt,
			}
		}
		// Lazy expiry of a lease the sweeper has not reached yet.
		if _, err := existing.Update().SetStatus(lease.StatusExpired).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to expire stale lease: %w", err)
		}
		entry, err := appendEvent(ctx, tx, intentID, events.EventTypeLeaseExpired, existing.HolderAgentID,
			events.Document(events.LeasePayload{
				LeaseID:       existing.ID,
				Scope:         existing.Scope,
				HolderAgentID: existing.HolderAgentID,
				ExpiresAt:     existing.ExpiresAt,
			}))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *entry)
	}

	created, err := tx.Lease.Create().
		SetID(uuid.New().String()).
		SetIntentID(intentID).
		SetScope(req.Scope).
		SetHolderAgentID(actor).
		SetStatus(lease.StatusActive).
		SetAcquiredAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	entry, err := appendEvent(ctx, tx, intentID, events.EventTypeLeaseAcquired, actor,
		events.Document(events.LeasePayload{
			LeaseID:       created.ID,
			Scope:         created.Scope,
			HolderAgentID: created.HolderAgentID,
			ExpiresAt:     created.ExpiresAt,
		}))
	if err != nil {
		return nil, err
	}
	notifications = append(notifications, *entry)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, n := range notifications {
		s.notify(ctx, n)
	}
	return created, nil
}

// Renew extends an ACTIVE unexpired lease held by the caller.
func (s *LeaseService) Renew(ctx context.Context, leaseID, actor string, ttlSeconds int64) (*ent.Lease, error) {
	if ttlSeconds <= 0 {
		return nil, NewValidationError("ttl_seconds", "must be positive")
	}
	ttl := config.ClampLeaseTTL(time.Duration(ttlSeconds) * time.Second)

	return s.withLease(ctx, leaseID, actor, func(tx *ent.Tx, l *ent.Lease) (*ent.Lease, *models.EventEntry, error) {
		now := time.Now()
		if l.Status != lease.StatusActive || !l.ExpiresAt.After(now) {
			return nil, nil, &LeaseConflictError{
				IntentID:      l.IntentID,
				Scope:         l.Scope,
				HolderAgentID: l.HolderAgentID,
				ExpiresAt:     l.ExpiresAt,
			}
		}

		updated, err := l.Update().SetExpiresAt(now.Add(ttl)).Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to renew lease: %w", err)
		}

		entry, err := appendEvent(ctx, tx, l.IntentID, events.EventTypeLeaseRenewed, actor,
			events.Document(events.LeasePayload{
				LeaseID:       updated.ID,
				Scope:         updated.Scope,
				HolderAgentID: updated.HolderAgentID,
				ExpiresAt:     updated.ExpiresAt,
			}))
		if err != nil {
			return nil, nil, err
		}
		return updated, entry, nil
	})
}

// Release marks a lease RELEASED. Only the holder may release. Releasing
// an already released or expired lease is a no-op.
func (s *LeaseService) Release(ctx context.Context, leaseID, actor string) (*ent.Lease, error) {
	return s.withLease(ctx, leaseID, actor, func(tx *ent.Tx, l *ent.Lease) (*ent.Lease, *models.EventEntry, error) {
		if l.Status != lease.StatusActive {
			return l, nil, nil
		}

		updated, err := l.Update().SetStatus(lease.StatusReleased).Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to release lease: %w", err)
		}

		entry, err := appendEvent(ctx, tx, l.IntentID, events.EventTypeLeaseReleased, actor,
			events.Document(events.LeasePayload{
				LeaseID:       updated.ID,
				Scope:         updated.Scope,
				HolderAgentID: updated.HolderAgentID,
				ExpiresAt:     updated.ExpiresAt,
			}))
		if err != nil {
			return nil, nil, err
		}
		return updated, entry, nil
	})
}

// List returns the ACTIVE unexpired leases on an intent. Past-expiry rows
// the sweeper has not reached yet are treated as already released.
func (s *LeaseService) List(ctx context.Context, intentID string) ([]*ent.Lease, error) {
	exists, err := s.client.Intent.Query().Where(intent.IDEQ(intentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query intent: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	leases, err := s.client.Lease.Query().
		Where(
			lease.IntentIDEQ(intentID),
			lease.StatusEQ(lease.StatusActive),
			lease.ExpiresAtGT(time.Now()),
		).
		Order(ent.Asc(lease.FieldScope)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	return leases, nil
}

// ExpireDue marks every ACTIVE lease whose expiry has passed as EXPIRED
// and emits LEASE_EXPIRED. Called by the background sweeper. Returns the
// number of leases expired.
func (s *LeaseService) ExpireDue(ctx context.Context) (int, error) {
	due, err := s.client.Lease.Query().
		Where(
			lease.StatusEQ(lease.StatusActive),
			lease.ExpiresAtLTE(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query due leases: %w", err)
	}

	expired := 0
	for _, l := range due {
		if err := s.expireOne(ctx, l.IntentID, l.ID); err != nil {
			slog.Warn("Failed to expire lease", "lease_id", l.ID, "error", err)
			continue
		}
		expired++
	}
	if expired > 0 {
		metrics.LeasesExpired.Add(float64(expired))
	}
	return expired, nil
}

func (s *LeaseService) expireOne(ctx context.Context, intentID, leaseID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock ordering is intent before lease everywhere, matching Acquire.
	if _, err := tx.Intent.Query().Where(intent.IDEQ(intentID)).ForUpdate().Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to lock intent: %w", err)
	}

	l, err := tx.Lease.Query().
		Where(lease.IDEQ(leaseID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to lock lease: %w", err)
	}
	// Re-check under the lock; Acquire may have swept it already.
	if l.Status != lease.StatusActive || l.ExpiresAt.After(time.Now()) {
		return nil
	}

	if _, err := l.Update().SetStatus(lease.StatusExpired).Save(ctx); err != nil {
		return fmt.Errorf("failed to expire lease: %w", err)
	}

	entry, err := appendEvent(ctx, tx, l.IntentID, events.EventTypeLeaseExpired, l.HolderAgentID,
		events.Document(events.LeasePayload{
			LeaseID:       l.ID,
			Scope:         l.Scope,
			HolderAgentID: l.HolderAgentID,
			ExpiresAt:     l.ExpiresAt,
		}))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(ctx, *entry)
	return nil
}

// withLease runs fn with the lease and its intent row locked. The lease
// must be held by actor.
func (s *LeaseService) withLease(ctx context.Context, leaseID, actor string, fn func(tx *ent.Tx, l *ent.Lease) (*ent.Lease, *models.EventEntry, error)) (*ent.Lease, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Peek at the lease to learn its intent, then lock intent before
	// lease to keep the ordering consistent with Acquire.
	peek, err := tx.Lease.Query().
		Where(lease.IDEQ(leaseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query lease: %w", err)
	}

	if _, err := tx.Intent.Query().Where(intent.IDEQ(peek.IntentID)).ForUpdate().Only(ctx); err != nil {
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}

	l, err := tx.Lease.Query().
		Where(lease.IDEQ(leaseID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock lease: %w", err)
	}
	if l.HolderAgentID != actor {
		return nil, fmt.Errorf("lease %s is held by %s: %w", leaseID, l.HolderAgentID, ErrInvalidInput)
	}

	updated, entry, err := fn(tx, l)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if entry != nil {
		s.notify(ctx, *entry)
	}
	return updated, nil
}

func (s *LeaseService) notify(ctx context.Context, entry models.EventEntry) {
	if s.publisher != nil {
		s.publisher.Notify(ctx, entry)
	}
}
