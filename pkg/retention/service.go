// Package retention rotates time-series tables that grow without bound:
// health samples and audit events. Pruning is idempotent and safe to run
// from multiple processes.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/pkg/config"
)

// Store is the data-layer slice the retention loop needs.
type Store interface {
	PruneHealthSamples(ctx context.Context, olderThan time.Time) (int, error)
	PruneAuditEvents(ctx context.Context, olderThan time.Time) (int, error)
}

// Service runs the background retention loop.
type Service struct {
	cfg    *config.RetentionConfig
	store  Store
	clock  clock.WithTicker
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService wires the retention loop.
func NewService(cfg *config.RetentionConfig, st Store, clk clock.WithTicker) *Service {
	return &Service{
		cfg:    cfg,
		store:  st,
		clock:  clk,
		logger: slog.With("component", "retention"),
		done:   make(chan struct{}),
	}
}

// Start launches the loop. The first pass runs immediately.
func (s *Service) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.run(ctx)
	s.logger.Info("retention service started",
		"health_sample_ttl", s.cfg.HealthSampleTTL,
		"audit_event_ttl", s.cfg.AuditEventTTL,
		"interval", s.cfg.Interval)
}

// Stop shuts the loop down, waiting up to the context deadline.
func (s *Service) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		s.logger.Info("retention service stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("retention shutdown timed out: %w", ctx.Err())
	}
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Prune(ctx)

	ticker := s.clock.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Prune(ctx)
		}
	}
}

// Prune runs one retention pass. Exported for tests.
func (s *Service) Prune(ctx context.Context) {
	now := s.clock.Now()

	if count, err := s.store.PruneHealthSamples(ctx, now.Add(-s.cfg.HealthSampleTTL)); err != nil {
		s.logger.Error("failed to prune health samples", "error", err)
	} else if count > 0 {
		s.logger.Info("pruned health samples", "count", count)
	}

	if count, err := s.store.PruneAuditEvents(ctx, now.Add(-s.cfg.AuditEventTTL)); err != nil {
		s.logger.Error("failed to prune audit events", "error", err)
	} else if count > 0 {
		s.logger.Info("pruned audit events", "count", count)
	}
}
