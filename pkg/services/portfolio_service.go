package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/models"
)

// PortfolioService groups intents into portfolios with aggregate status
// and informational governance policies. Governance thresholds surface as
// events for external orchestrators; the core never enforces them.
type PortfolioService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(client *ent.Client, publisher *events.Publisher) *PortfolioService {
	return &PortfolioService{client: client, publisher: publisher}
}

// CreatePortfolio creates an empty ACTIVE portfolio.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, actor string, req models.CreatePortfolioRequest) (*ent.Portfolio, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Portfolio.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetCreatorAgentID(actor).
		SetStatus(portfolio.StatusActive)

	if req.GovernancePolicy != nil {
		doc, err := req.GovernancePolicy.Document()
		if err != nil {
			return nil, err
		}
		builder.SetGovernancePolicy(doc)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return p, nil
}

// GetPortfolio returns a portfolio with its memberships loaded.
func (s *PortfolioService) GetPortfolio(ctx context.Context, id string) (*ent.Portfolio, error) {
	p, err := s.client.Portfolio.Query().
		Where(portfolio.IDEQ(id)).
		WithMembers().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query portfolio: %w", err)
	}
	return p, nil
}

// ListPortfolios returns portfolios newest first.
func (s *PortfolioService) ListPortfolios(ctx context.Context, limit, offset int) ([]*ent.Portfolio, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	items, err := s.client.Portfolio.Query().
		Order(ent.Desc(portfolio.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return items, nil
}

// AddMember adds an intent to a portfolio, appends MEMBERSHIP_ADDED to
// the intent's log, and recomputes the portfolio aggregate.
func (s *PortfolioService) AddMember(ctx context.Context, portfolioID, actor string, req models.AddMemberRequest) (*ent.PortfolioMember, error) {
	if req.IntentID == "" {
		return nil, NewValidationError("intent_id", "required")
	}
	role := portfoliomember.Role(req.Role)
	if req.Role == "" {
		role = portfoliomember.RoleMember
	}
	if err := portfoliomember.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", "unknown role "+req.Role)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Portfolio.Query().Where(portfolio.IDEQ(portfolioID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if _, err := tx.Intent.Query().Where(intent.IDEQ(req.IntentID)).ForUpdate().Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("intent %s: %w", req.IntentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock intent: %w", err)
	}

	member, err := tx.PortfolioMember.Create().
		SetPortfolioID(portfolioID).
		SetIntentID(req.IntentID).
		SetRole(role).
		SetPriority(req.Priority).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	entry, err := appendEvent(ctx, tx, req.IntentID, events.EventTypeMembershipAdded, actor,
		events.Document(events.MembershipAddedPayload{
			PortfolioID: portfolioID,
			Role:        string(role),
			Priority:    req.Priority,
		}))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
	s.recompute(ctx, portfolioID, req.IntentID)
	return member, nil
}

// RemoveMember removes an intent from a portfolio and recomputes the
// aggregate over the remaining members.
func (s *PortfolioService) RemoveMember(ctx context.Context, portfolioID, intentID string) error {
	count, err := s.client.PortfolioMember.Delete().
		Where(
			portfoliomember.PortfolioIDEQ(portfolioID),
			portfoliomember.IntentIDEQ(intentID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	if anchor, err := s.anchorMember(ctx, portfolioID); err == nil && anchor != "" {
		s.recompute(ctx, portfolioID, anchor)
	}
	return nil
}

// UpdateStatus moves a portfolio between active, completed and cancelled.
func (s *PortfolioService) UpdateStatus(ctx context.Context, portfolioID, status string) (*ent.Portfolio, error) {
	st := portfolio.Status(strings.ToLower(status))
	if err := portfolio.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", "unknown status "+status)
	}

	p, err := s.client.Portfolio.UpdateOneID(portfolioID).
		SetStatus(st).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update portfolio status: %w", err)
	}
	return p, nil
}

// RecomputeForMember recomputes aggregates for every portfolio the intent
// belongs to. Wired into the post-status-change hook.
func (s *PortfolioService) RecomputeForMember(ctx context.Context, intentID string) {
	memberships, err := s.client.PortfolioMember.Query().
		Where(portfoliomember.IntentIDEQ(intentID)).
		All(ctx)
	if err != nil {
		slog.Warn("Portfolio recompute skipped", "intent_id", intentID, "error", err)
		return
	}
	for _, m := range memberships {
		s.recompute(ctx, m.PortfolioID, intentID)
	}
}

// recompute refreshes one portfolio's aggregate. When it changed, the
// new summary is appended as AGGREGATE_CHANGED to the log of the intent
// that triggered the recompute.
func (s *PortfolioService) recompute(ctx context.Context, portfolioID, triggerIntentID string) {
	if err := s.recomputeOne(ctx, portfolioID, triggerIntentID); err != nil {
		slog.Warn("Portfolio aggregate recompute failed",
			"portfolio_id", portfolioID, "error", err)
	}
}

func (s *PortfolioService) recomputeOne(ctx context.Context, portfolioID, triggerIntentID string) error {
	p, err := s.client.Portfolio.Query().Where(portfolio.IDEQ(portfolioID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query portfolio: %w", err)
	}

	members, err := s.memberIntents(ctx, portfolioID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	nodes := make([]graphNode, 0, len(members))
	for _, it := range members {
		nodes = append(nodes, graphNode{it: it})
	}
	agg := computeAggregate(nodes)

	previous, err := aggregateFromDocument(p.Aggregate)
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

	if _, err := tx.Intent.Query().Where(intent.IDEQ(triggerIntentID)).ForUpdate().Only(ctx); err != nil {
		return fmt.Errorf("failed to lock intent: %w", err)
	}
	if _, err := tx.Portfolio.UpdateOneID(portfolioID).
		SetAggregate(doc).
		SetUpdatedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to persist aggregate: %w", err)
	}

	payload := events.Document(events.AggregateChangedPayload{Aggregate: doc})
	payload["portfolio_id"] = portfolioID
	entry, err := appendEvent(ctx, tx, triggerIntentID, events.EventTypeAggregateChanged, "system", payload)
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

func (s *PortfolioService) memberIntents(ctx context.Context, portfolioID string) ([]*ent.Intent, error) {
	memberships, err := s.client.PortfolioMember.Query().
		Where(portfoliomember.PortfolioIDEQ(portfolioID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.IntentID)
	}
	items, err := s.client.Intent.Query().Where(intent.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query member intents: %w", err)
	}
	return items, nil
}

// CheckGovernance evaluates a portfolio's informational policy and emits
// COST_THRESHOLD_EXCEEDED or TIMEOUT_REACHED on the anchor member's log.
// Each threshold event is emitted at most once per portfolio. Called by
// the background recomputer.
func (s *PortfolioService) CheckGovernance(ctx context.Context, portfolioID string) error {
	p, err := s.client.Portfolio.Query().Where(portfolio.IDEQ(portfolioID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query portfolio: %w", err)
	}
	policy, err := models.GovernancePolicyFromDocument(p.GovernancePolicy)
	if err != nil || policy == nil {
		return err
	}

	anchor, err := s.anchorMember(ctx, portfolioID)
	if err != nil || anchor == "" {
		return err
	}

	if policy.MaxCostUSD > 0 {
		total, err := s.totalCost(ctx, portfolioID)
		if err != nil {
			return err
		}
		if total > policy.MaxCostUSD {
			if err := s.emitThreshold(ctx, anchor, portfolioID, events.EventTypeCostThresholdExceeded, map[string]any{
				"portfolio_id": portfolioID,
				"max_cost_usd": policy.MaxCostUSD,
				"total_cost":   total,
			}); err != nil {
				return err
			}
		}
	}

	if policy.TimeoutHours > 0 {
		deadline := p.CreatedAt.Add(time.Duration(policy.TimeoutHours * float64(time.Hour)))
		if time.Now().After(deadline) {
			if err := s.emitThreshold(ctx, anchor, portfolioID, events.EventTypeTimeoutReached, map[string]any{
				"portfolio_id":  portfolioID,
				"timeout_hours": policy.TimeoutHours,
				"deadline":      deadline,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// anchorMember picks the log that carries portfolio-level events: the
// primary member when one exists, otherwise the oldest member.
func (s *PortfolioService) anchorMember(ctx context.Context, portfolioID string) (string, error) {
	primary, err := s.client.PortfolioMember.Query().
		Where(
			portfoliomember.PortfolioIDEQ(portfolioID),
			portfoliomember.RoleEQ(portfoliomember.RolePrimary),
		).
		First(ctx)
	if err == nil {
		return primary.IntentID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query primary member: %w", err)
	}

	first, err := s.client.PortfolioMember.Query().
		Where(portfoliomember.PortfolioIDEQ(portfolioID)).
		Order(ent.Asc(portfoliomember.FieldAddedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query members: %w", err)
	}
	return first.IntentID, nil
}

func (s *PortfolioService) totalCost(ctx context.Context, portfolioID string) (float64, error) {
	members, err := s.client.PortfolioMember.Query().
		Where(portfoliomember.PortfolioIDEQ(portfolioID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query memberships: %w", err)
	}
	if len(members) == 0 {
		return 0, nil
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.IntentID)
	}

	var total []struct {
		Sum float64 `json:"sum"`
	}
	err = s.client.CostEntry.Query().
		Where(costentry.IntentIDIn(ids...)).
		Aggregate(ent.Sum(costentry.FieldAmount)).
		Scan(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum costs: %w", err)
	}
	if len(total) == 0 {
		return 0, nil
	}
	return total[0].Sum, nil
}

// emitThreshold appends a threshold event unless the anchor log already
// carries one of that type for this portfolio.
func (s *PortfolioService) emitThreshold(ctx context.Context, anchorIntentID, portfolioID, eventType string, payload map[string]any) error {
	// An intent can anchor several portfolios, so the dedup has to match
	// on the portfolio in the payload, not just the event type.
	existing, err := s.client.IntentEvent.Query().
		Where(
			intentevent.IntentIDEQ(anchorIntentID),
			intentevent.EventTypeEQ(eventType),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query threshold events: %w", err)
	}
	for _, ev := range existing {
		if ev.Payload != nil && ev.Payload["portfolio_id"] == portfolioID {
			return nil
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Intent.Query().Where(intent.IDEQ(anchorIntentID)).ForUpdate().Only(ctx); err != nil {
		return fmt.Errorf("failed to lock intent: %w", err)
	}

	entry, err := appendEvent(ctx, tx, anchorIntentID, eventType, "system", payload)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Notify(ctx, *entry)
	}
	slog.Info("Governance threshold event emitted",
		"portfolio_id", portfolioID, "event_type", eventType)
	return nil
}
