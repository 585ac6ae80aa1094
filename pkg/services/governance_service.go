package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
)

// GovernanceService records costs, attachments, comments, arbitration
// requests, and decisions. Everything here appends to the audit log;
// terminal intents still accept these for post-mortem records.
type GovernanceService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewGovernanceService creates a new GovernanceService.
func NewGovernanceService(client *ent.Client, publisher *events.Publisher) *GovernanceService {
	return &GovernanceService{client: client, publisher: publisher}
}

// RecordCost appends a cost ledger entry and the COST_RECORDED event.
func (s *GovernanceService) RecordCost(ctx context.Context, intentID, actor string, req models.RecordCostRequest) (*ent.CostEntry, error) {
	costType := costentry.CostType(req.CostType)
	if err := costentry.CostTypeValidator(costType); err != nil {
		return nil, NewValidationError("cost_type", "unknown cost type "+req.CostType)
	}
	if req.Amount < 0 {
		return nil, NewValidationError("amount", "must not be negative")
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockIntent(ctx, tx, intentID); err != nil {
		return nil, err
	}

	entryRow, err := tx.CostEntry.Create().
		SetIntentID(intentID).
		SetAgentID(actor).
		SetCostType(costType).
		SetAmount(req.Amount).
		SetCurrency(currency).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost entry: %w", err)
	}

	evt, err := appendEvent(ctx, tx, intentID, events.EventTypeCostRecorded, actor,
		events.Document(events.CostRecordedPayload{
			CostType: req.CostType,
			Amount:   req.Amount,
			Currency: currency,
			AgentID:  actor,
		}))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(ctx, evt)
	return entryRow, nil
}

// CostSummary is the cost ledger rollup for an intent.
type CostSummary struct {
	Entries []*ent.CostEntry   `json:"entries"`
	Totals  map[string]float64 `json:"totals"` // currency -> sum
}

// ListCosts returns the cost ledger with per-currency totals.
func (s *GovernanceService) ListCosts(ctx context.Context, intentID string) (*CostSummary, error) {
	if err := s.requireIntent(ctx, intentID); err != nil {
		return nil, err
	}

	entries, err := s.client.CostEntry.Query().
		Where(costentry.IntentIDEQ(intentID)).
		Order(ent.Asc(costentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}

	summary := &CostSummary{Entries: entries, Totals: map[string]float64{}}
	for _, e := range entries {
		summary.Totals[e.Currency] += e.Amount
	}
	return summary, nil
}

// CreateAttachment stores a blob with its SHA-256 digest and appends
// ATTACHMENT_CREATED. Blobs above the size cap are rejected.
func (s *GovernanceService) CreateAttachment(ctx context.Context, intentID, actor string, req models.CreateAttachmentRequest) (*ent.Attachment, error) {
	if req.Filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if len(req.Content) == 0 {
		return nil, NewValidationError("content", "required")
	}
	if len(req.Content) > config.MaxAttachmentSize {
		return nil, NewValidationError("content",
			fmt.Sprintf("exceeds %d byte limit", config.MaxAttachmentSize))
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	digest := sha256.Sum256(req.Content)
	sum := hex.EncodeToString(digest[:])

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockIntent(ctx, tx, intentID); err != nil {
		return nil, err
	}

	builder := tx.Attachment.Create().
		SetID(uuid.New().String()).
		SetIntentID(intentID).
		SetFilename(req.Filename).
		SetContentType(contentType).
		SetSize(int64(len(req.Content))).
		SetSha256(sum).
		SetBlob(req.Content).
		SetCreatedBy(actor)
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	evt, err := appendEvent(ctx, tx, intentID, events.EventTypeAttachmentCreated, actor,
		events.Document(events.AttachmentCreatedPayload{
			AttachmentID: created.ID,
			Filename:     created.Filename,
			ContentType:  created.ContentType,
			Size:         created.Size,
			SHA256:       created.Sha256,
		}))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(ctx, evt)
	return created, nil
}

// GetAttachment returns one attachment including its blob.
func (s *GovernanceService) GetAttachment(ctx context.Context, id string) (*ent.Attachment, error) {
	a, err := s.client.Attachment.Query().Where(attachment.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query attachment: %w", err)
	}
	return a, nil
}

// ListAttachments returns attachment metadata for an intent. Blobs are
// excluded; fetch them individually.
func (s *GovernanceService) ListAttachments(ctx context.Context, intentID string) ([]*ent.Attachment, error) {
	if err := s.requireIntent(ctx, intentID); err != nil {
		return nil, err
	}
	items, err := s.client.Attachment.Query().
		Where(attachment.IntentIDEQ(intentID)).
		Select(
			attachment.FieldID,
			attachment.FieldIntentID,
			attachment.FieldFilename,
			attachment.FieldContentType,
			attachment.FieldSize,
			attachment.FieldSha256,
			attachment.FieldMetadata,
			attachment.FieldCreatedBy,
			attachment.FieldCreatedAt,
		).
		Order(ent.Asc(attachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return items, nil
}

// AddComment appends a COMMENT event. Comments live only in the log.
func (s *GovernanceService) AddComment(ctx context.Context, intentID, actor, text string) (*models.EventEntry, error) {
	if text == "" {
		return nil, NewValidationError("text", "required")
	}
	return s.appendOnly(ctx, intentID, actor, events.EventTypeComment, map[string]any{"text": text})
}

// RequestArbitration appends ARBITRATION_REQUESTED. Callers that want
// work paused should also block the intent via set_status.
func (s *GovernanceService) RequestArbitration(ctx context.Context, intentID, actor string, req models.ArbitrationRequest) (*models.EventEntry, error) {
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	payload := map[string]any{"question": req.Question}
	if len(req.Options) > 0 {
		payload["options"] = req.Options
	}
	if req.Context != nil {
		payload["context"] = req.Context
	}
	return s.appendOnly(ctx, intentID, actor, events.EventTypeArbitrationRequested, payload)
}

// RecordDecision appends DECISION_RECORDED. With Unblock set, the intent
// transitions BLOCKED to ACTIVE in the same transaction under the usual
// optimistic concurrency check.
func (s *GovernanceService) RecordDecision(ctx context.Context, intentID, actor string, req models.DecisionRequest) (*models.EventEntry, error) {
	if req.Decision == "" {
		return nil, NewValidationError("decision", "required")
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

	payload := map[string]any{"decision": req.Decision}
	if req.Rationale != "" {
		payload["rationale"] = req.Rationale
	}
	if req.Metadata != nil {
		payload["metadata"] = req.Metadata
	}
	evt, err := appendEvent(ctx, tx, intentID, events.EventTypeDecisionRecorded, actor, payload)
	if err != nil {
		return nil, err
	}
	notifications := []models.EventEntry{*evt}

	if req.Unblock {
		if current.Status != intent.StatusBlocked {
			return nil, &InvalidTransitionError{
				IntentID: intentID,
				From:     string(current.Status),
				To:       string(intent.StatusActive),
			}
		}
		if current.Version != req.ExpectedVersion {
			return nil, &VersionConflictError{
				IntentID:        intentID,
				ExpectedVersion: req.ExpectedVersion,
				CurrentVersion:  current.Version,
			}
		}

		if _, err := current.Update().
			SetStatus(intent.StatusActive).
			SetVersion(current.Version + 1).
			SetUpdatedAt(time.Now()).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to unblock intent: %w", err)
		}

		statusEvt, err := appendEvent(ctx, tx, intentID, events.EventTypeStatusChanged, actor,
			events.Document(events.StatusChangedPayload{
				From:   string(intent.StatusBlocked),
				To:     string(intent.StatusActive),
				Reason: "arbitration decision: " + req.Decision,
			}))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *statusEvt)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i := range notifications {
		s.notify(ctx, &notifications[i])
	}
	return evt, nil
}

func (s *GovernanceService) appendOnly(ctx context.Context, intentID, actor, eventType string, payload map[string]any) (*models.EventEntry, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockIntent(ctx, tx, intentID); err != nil {
		return nil, err
	}

	evt, err := appendEvent(ctx, tx, intentID, eventType, actor, payload)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(ctx, evt)
	return evt, nil
}

func (s *GovernanceService) requireIntent(ctx context.Context, intentID string) error {
	exists, err := s.client.Intent.Query().Where(intent.IDEQ(intentID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query intent: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func (s *GovernanceService) notify(ctx context.Context, entry *models.EventEntry) {
	if entry != nil && s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
}

// lockIntent takes the intent row lock that serializes event sequence
// assignment.
func lockIntent(ctx context.Context, tx *ent.Tx, intentID string) error {
	_, err := tx.Intent.Query().
		Where(intent.IDEQ(intentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock intent: %w", err)
	}
	return nil
}
