// Package maintenance runs the background loops that keep the
// substrate honest: lease expiry, portfolio governance checks, and
// event log retention.
package maintenance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/services"
)

// Service owns the periodic workers. Each loop is idempotent and safe
// to run from multiple replicas; the database row locks serialize the
// actual mutations.
type Service struct {
	cfg        *config.Config
	leases     *services.LeaseService
	portfolios *services.PortfolioService
	retries    *services.RetryService
	events     *services.EventService

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a maintenance service.
func NewService(
	cfg *config.Config,
	leases *services.LeaseService,
	portfolios *services.PortfolioService,
	retries *services.RetryService,
	events *services.EventService,
) *Service {
	return &Service{
		cfg:        cfg,
		leases:     leases,
		portfolios: portfolios,
		retries:    retries,
		events:     events,
	}
}

// Start launches the background loops.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.spawn(ctx, s.cfg.Lease.SweepInterval, s.sweepLeases)
	s.spawn(ctx, s.cfg.Governance.CheckInterval, s.checkGovernance)
	s.spawn(ctx, s.cfg.Governance.CheckInterval, s.reconcileRetries)
	if s.cfg.Retention.MaxEventAge > 0 {
		s.spawn(ctx, s.cfg.Retention.SweepInterval, s.pruneEvents)
	}

	slog.Info("Maintenance service started",
		"lease_sweep_interval", s.cfg.Lease.SweepInterval,
		"governance_check_interval", s.cfg.Governance.CheckInterval,
		"event_retention_max_age", s.cfg.Retention.MaxEventAge)
}

// Stop signals the loops to exit and waits for them to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Maintenance service stopped")
}

func (s *Service) spawn(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
}

func (s *Service) sweepLeases(ctx context.Context) {
	count, err := s.leases.ExpireDue(ctx)
	if err != nil {
		slog.Error("Lease sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Expired leases", "count", count)
	}
}

func (s *Service) checkGovernance(ctx context.Context) {
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		page, err := s.portfolios.ListPortfolios(ctx, pageSize, offset)
		if err != nil {
			slog.Error("Governance check: portfolio listing failed", "error", err)
			return
		}
		for _, p := range page {
			if err := s.portfolios.CheckGovernance(ctx, p.ID); err != nil {
				slog.Error("Governance check failed",
					"portfolio_id", p.ID, "error", err)
			}
		}
		if len(page) < pageSize {
			return
		}
	}
}

func (s *Service) reconcileRetries(ctx context.Context) {
	count, err := s.retries.ReconcileExhausted(ctx)
	if err != nil {
		slog.Error("Retry reconcile failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Reconciled exhausted intents", "count", count)
	}
}

func (s *Service) pruneEvents(ctx context.Context) {
	count, err := s.events.PruneEvents(ctx, s.cfg.Retention.MaxEventAge)
	if err != nil {
		slog.Error("Retention: event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned events", "count", count)
	}
}
