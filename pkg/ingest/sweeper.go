package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// Sweep reasons. start_timeout marks assignments whose dispatch never turned
// into a running signal; execution_timeout marks runs whose shard progress
// went quiet past the budget.
const (
	ReasonExecutionTimeout = "execution_timeout"
	ReasonStartTimeout     = "start_timeout"
)

const sweepBatchSize = 100

// SweeperStore is the data-layer slice the sweeper needs.
type SweeperStore interface {
	ListOverdueExecutions(ctx context.Context, idleBefore, assignedBefore time.Time, limit int) ([]*ent.Execution, error)
	FinalizeExecution(ctx context.Context, execID string, status execution.Status, aggregated *models.AggregatedResults, reason string) (*store.ApplyResult, error)
}

// Sweeper finalizes executions whose runner went silent: the safety net under
// every lost webhook, dead runner and crashed dispatch. Without it a silent
// runner pins its slot and the execution forever.
type Sweeper struct {
	cfg       *config.IngestConfig
	store     SweeperStore
	publisher Publisher
	slots     Slots
	notifier  Notifier
	clock     clock.WithTicker
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper wires the sweeper. notifier may be nil.
func NewSweeper(cfg *config.IngestConfig, st SweeperStore, publisher Publisher, slots Slots, notifier Notifier, clk clock.WithTicker) *Sweeper {
	return &Sweeper{
		cfg:       cfg,
		store:     st,
		publisher: publisher,
		slots:     slots,
		notifier:  notifier,
		clock:     clk,
		logger:    slog.With("component", "completion_sweeper"),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.run(ctx)
	s.logger.Info("completion sweeper started",
		"interval", s.cfg.SweepInterval, "execution_timeout", s.cfg.ExecutionTimeout)
}

// Stop shuts the loop down, waiting up to the context deadline.
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		s.logger.Info("completion sweeper stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sweeper shutdown timed out: %w", ctx.Err())
	}
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := s.clock.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one scan. Exported for tests and for a forced sweep at startup.
// The timeout is an inactivity budget: each shard result resets the clock for
// its execution.
func (s *Sweeper) Sweep(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.cfg.ExecutionTimeout)

	overdue, err := s.store.ListOverdueExecutions(ctx, cutoff, cutoff, sweepBatchSize)
	if err != nil {
		s.logger.Error("failed to scan for overdue executions", "error", err)
		return
	}

	for _, exec := range overdue {
		if ctx.Err() != nil {
			return
		}

		reason := ReasonExecutionTimeout
		if exec.Status == execution.StatusAssigned {
			reason = ReasonStartTimeout
		}

		// Partial shard results stay on the row; aggregated stays null.
		res, err := s.store.FinalizeExecution(ctx, exec.ID, execution.StatusError, nil, reason)
		if err != nil {
			s.logger.Error("failed to finalize overdue execution",
				"execution_id", exec.ID, "error", err)
			continue
		}
		if res.Outcome != store.OutcomeApplied {
			continue
		}

		s.logger.Warn("execution timed out", "execution_id", exec.ID, "reason", reason)
		s.publisher.ExecutionCompleted(ctx, res.Execution, reason)
		if res.Execution.AssignedRunnerID != nil {
			s.slots.DecInflight(*res.Execution.AssignedRunnerID)
		}
		if s.notifier != nil {
			s.notifier.NotifyCompletion(res.Execution)
		}
	}
}
