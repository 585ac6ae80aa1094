package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
)

// RetryService manages retry policies and failure accounting. The
// substrate never waits or retries itself: it computes backoff delays and
// emits RETRY_SCHEDULED for external workers to act on.
type RetryService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewRetryService creates a new RetryService.
func NewRetryService(client *ent.Client, publisher *events.Publisher) *RetryService {
	return &RetryService{client: client, publisher: publisher}
}

// SetPolicy stores the retry policy on the intent under optimistic
// concurrency and appends RETRY_POLICY_SET.
func (s *RetryService) SetPolicy(ctx context.Context, intentID, actor string, req models.SetRetryPolicyRequest) (*ent.Intent, error) {
	if err := req.Policy.Validate(); err != nil {
		return nil, NewValidationError("policy", err.Error())
	}
	doc, err := req.Policy.Document()
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}
	if terminalStatuses[current.Status] {
		return nil, fmt.Errorf("intent %s (%s): %w", intentID, current.Status, ErrTerminal)
	}
	if current.Version != req.ExpectedVersion {
		return nil, &VersionConflictError{
			IntentID:        intentID,
			ExpectedVersion: req.ExpectedVersion,
			CurrentVersion:  current.Version,
		}
	}

	updated, err := current.Update().
		SetRetryPolicy(doc).
		SetVersion(current.Version + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set retry policy: %w", err)
	}

	entry, err := appendEvent(ctx, tx, intentID, events.EventTypeRetryPolicySet, actor, doc)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
	return updated, nil
}

// RecordFailure records one failed attempt and drives the retry decision
// in the same transaction:
//
//   - non-recoverable: RETRY_EXHAUSTED, intent transitions to FAILED
//   - attempt count reached the failure threshold: same
//   - otherwise: RETRY_SCHEDULED carrying the computed backoff delay
func (s *RetryService) RecordFailure(ctx context.Context, intentID, actor string, req models.RecordFailureRequest) (*ent.FailureRecord, error) {
	if req.ErrorType == "" {
		return nil, NewValidationError("error_type", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}
	if terminalStatuses[current.Status] {
		return nil, fmt.Errorf("intent %s (%s): %w", intentID, current.Status, ErrTerminal)
	}

	attempt := current.AttemptCount + 1

	recordBuilder := tx.FailureRecord.Create().
		SetIntentID(intentID).
		SetErrorType(req.ErrorType).
		SetErrorMessage(req.ErrorMessage).
		SetRecoverable(req.Recoverable).
		SetAttemptNumber(attempt)
	if req.Context != nil {
		recordBuilder.SetContext(req.Context)
	}
	record, err := recordBuilder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create failure record: %w", err)
	}

	var notifications []models.EventEntry
	entry, err := appendEvent(ctx, tx, intentID, events.EventTypeFailureRecorded, actor,
		events.Document(events.FailureRecordedPayload{
			ErrorType:     req.ErrorType,
			ErrorMessage:  req.ErrorMessage,
			Recoverable:   req.Recoverable,
			AttemptNumber: attempt,
		}))
	if err != nil {
		return nil, err
	}
	notifications = append(notifications, *entry)

	policy, err := models.RetryPolicyFromDocument(current.RetryPolicy)
	if err != nil {
		return nil, err
	}

	exhausted := false
	reason := ""
	switch {
	case !req.Recoverable:
		exhausted = true
		reason = "non-recoverable failure"
	case policy == nil:
		exhausted = true
		reason = "no retry policy"
	case attempt >= policy.FailureThreshold:
		exhausted = true
		reason = fmt.Sprintf("failure threshold %d reached", policy.FailureThreshold)
	}

	version := current.Version
	if exhausted {
		entry, err := appendEvent(ctx, tx, intentID, events.EventTypeRetryExhausted, actor,
			events.Document(events.RetryExhaustedPayload{
				AttemptNumber: attempt,
				Reason:        reason,
			}))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *entry)

		update := current.Update().
			SetAttemptCount(attempt).
			SetUpdatedAt(time.Now())

		// Only statuses with a legal path to FAILED transition. A pending
		// intent keeps its status; the exhaustion is still on the log.
		if transitionAllowed(current.Status, intent.StatusFailed) {
			// Terminal transition bypasses the expected_version check: the
			// decision was made under the row lock.
			version++
			entry, err = appendEvent(ctx, tx, intentID, events.EventTypeStatusChanged, actor,
				events.Document(events.StatusChangedPayload{
					From:   string(current.Status),
					To:     string(intent.StatusFailed),
					Reason: reason,
				}))
			if err != nil {
				return nil, err
			}
			notifications = append(notifications, *entry)
			update.SetStatus(intent.StatusFailed).SetVersion(version)
		}

		if _, err := update.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark intent failed: %w", err)
		}
	} else {
		entry, err := appendEvent(ctx, tx, intentID, events.EventTypeRetryScheduled, actor,
			events.Document(events.RetryScheduledPayload{
				AttemptNumber: attempt,
				DelayMs:       policy.NextDelay(attempt).Milliseconds(),
				Strategy:      string(policy.Strategy),
			}))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *entry)

		if _, err := current.Update().
			SetAttemptCount(attempt).
			SetUpdatedAt(time.Now()).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update attempt count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, n := range notifications {
		if s.publisher != nil {
			s.publisher.Notify(ctx, n)
		}
	}
	return record, nil
}

// ReconcileExhausted finds active and blocked intents whose recorded attempts
// already crossed their failure threshold and finalizes the FAILED
// transition. RecordFailure does this in its own transaction; the
// reconciler is crash recovery for transitions that never landed.
func (s *RetryService) ReconcileExhausted(ctx context.Context) (int, error) {
	candidates, err := s.client.Intent.Query().
		Where(
			intent.StatusIn(intent.StatusActive, intent.StatusBlocked),
			intent.AttemptCountGT(0),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query candidates: %w", err)
	}

	reconciled := 0
	for _, it := range candidates {
		policy, err := models.RetryPolicyFromDocument(it.RetryPolicy)
		if err != nil {
			continue
		}
		if policy != nil && it.AttemptCount < policy.FailureThreshold {
			continue
		}
		reason := "no retry policy"
		if policy != nil {
			reason = fmt.Sprintf("failure threshold %d reached", policy.FailureThreshold)
		}
		if err := s.finalizeExhausted(ctx, it.ID, reason); err != nil {
			slog.Warn("Retry reconcile failed", "intent_id", it.ID, "error", err)
			continue
		}
		reconciled++
	}
	return reconciled, nil
}

func (s *RetryService) finalizeExhausted(ctx context.Context, intentID, reason string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock intent: %w", err)
	}
	if !transitionAllowed(current.Status, intent.StatusFailed) {
		return nil
	}

	var notifications []models.EventEntry
	entry, err := appendEvent(ctx, tx, intentID, events.EventTypeRetryExhausted, "system",
		events.Document(events.RetryExhaustedPayload{
			AttemptNumber: current.AttemptCount,
			Reason:        reason,
		}))
	if err != nil {
		return err
	}
	notifications = append(notifications, *entry)

	entry, err = appendEvent(ctx, tx, intentID, events.EventTypeStatusChanged, "system",
		events.Document(events.StatusChangedPayload{
			From:   string(current.Status),
			To:     string(intent.StatusFailed),
			Reason: reason,
		}))
	if err != nil {
		return err
	}
	notifications = append(notifications, *entry)

	if _, err := current.Update().
		SetStatus(intent.StatusFailed).
		SetVersion(current.Version + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark intent failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, n := range notifications {
		if s.publisher != nil {
			s.publisher.Notify(ctx, n)
		}
	}
	return nil
}

// ListFailures returns the failure records for an intent in attempt order.
func (s *RetryService) ListFailures(ctx context.Context, intentID string) ([]*ent.FailureRecord, error) {
	exists, err := s.client.Intent.Query().Where(intent.IDEQ(intentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query intent: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	records, err := s.client.FailureRecord.Query().
		Where(failurerecord.IntentIDEQ(intentID)).
		Order(ent.Asc(failurerecord.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list failures: %w", err)
	}
	return records, nil
}
