// Package scheduler runs the assignment loop: the single writer that moves
// executions from queued to assigned. It wakes on a periodic tick and on edge
// events (new work, freed capacity, fleet changes), matches queued executions
// against the registry snapshot through the rule engine, and commits
// assignments through the Store.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/registry"
	"github.com/baton-ci/baton/pkg/rules"
	"github.com/baton-ci/baton/pkg/store"
)

// Store is the slice of the data layer the loop needs.
type Store interface {
	ClaimCandidates(ctx context.Context, limit int) ([]*ent.Execution, error)
	AssignExecution(ctx context.Context, execID string, runnerID int) (*ent.Execution, error)
	GetRunner(ctx context.Context, id int) (*ent.Runner, error)
	ListActiveRules(ctx context.Context) ([]*ent.BalancingRule, error)
	AdvanceRuleCursor(ctx context.Context, ruleID, from, to int) error
	AllocationLoadByRunner(ctx context.Context) (map[int]float64, error)
	QueueStats(ctx context.Context) (*models.QueueStats, error)
}

// Fleet is the registry surface the loop uses.
type Fleet interface {
	CandidatesFor(requestedType *string, requestedID *int) []registry.Candidate
	IncInflight(id int)
}

// Dispatcher hands committed assignments to the driver gateway.
type Dispatcher interface {
	Dispatch(exec *ent.Execution, rnr *ent.Runner)
}

// Publisher announces assignments and queue depth.
type Publisher interface {
	ExecutionAssigned(ctx context.Context, exec *ent.Execution, rnr *ent.Runner, rule *ent.BalancingRule)
	QueueDepth(queued, assigned, running int)
}

// Scheduler owns the loop goroutine. Start once, Stop once.
type Scheduler struct {
	cfg       *config.SchedulerConfig
	store     Store
	fleet     Fleet
	engine    *rules.Engine
	gateway   Dispatcher
	publisher Publisher
	bus       *events.Bus
	clock     clock.WithTicker
	logger    *slog.Logger

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// New wires the scheduler. clk may be a fake in tests.
func New(cfg *config.SchedulerConfig, st Store, fleet Fleet, engine *rules.Engine, gateway Dispatcher, publisher Publisher, bus *events.Bus, clk clock.WithTicker) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		store:     st,
		fleet:     fleet,
		engine:    engine,
		gateway:   gateway,
		publisher: publisher,
		bus:       bus,
		clock:     clk,
		logger:    slog.With("component", "scheduler"),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start launches the loop and its bus watcher.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	sub := s.bus.Subscribe("scheduler",
		events.KindExecutionQueued,
		events.KindExecutionCompleted,
		events.KindRunnerRegistered,
		events.KindRunnerHealthChanged,
	)

	go func() {
		// Any of these events can create headroom or work; the pass itself
		// figures out what actually changed.
		for range sub.Events() {
			s.Wake()
		}
	}()

	go s.run(ctx, sub)
	s.logger.Info("scheduler started",
		"tick", s.cfg.Tick, "batch_size", s.cfg.BatchSize)
}

// Stop shuts the loop down, waiting up to the context deadline.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown timed out: %w", ctx.Err())
	}
}

// Wake requests a pass soon. Non-blocking; concurrent wakes coalesce.
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run(ctx context.Context, sub *events.Subscription) {
	defer close(s.done)
	defer sub.Close()

	ticker := s.clock.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
		case <-s.wake:
			s.debounce(ctx)
		}
		s.RunPass(ctx)
	}
}

// debounce lets a burst of wake events settle into one pass.
func (s *Scheduler) debounce(ctx context.Context) {
	if s.cfg.Debounce <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-s.clock.After(s.cfg.Debounce):
	}
}

// RunPass executes one scheduling pass. Exported for tests; production code
// only reaches it through the loop.
func (s *Scheduler) RunPass(ctx context.Context) {
	execs, err := s.store.ClaimCandidates(ctx, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("failed to load queued executions", "error", err)
		return
	}

	if len(execs) > 0 {
		activeRules, err := s.store.ListActiveRules(ctx)
		if err != nil {
			s.logger.Error("failed to load rules", "error", err)
			return
		}
		loads, err := s.store.AllocationLoadByRunner(ctx)
		if err != nil {
			s.logger.Error("failed to load allocation scores", "error", err)
			return
		}

		assigned := 0
		for _, exec := range execs {
			if ctx.Err() != nil {
				return
			}
			if s.assignOne(ctx, exec, activeRules, loads) {
				assigned++
			}
		}
		if assigned > 0 {
			s.logger.Info("scheduling pass complete", "considered", len(execs), "assigned", assigned)
		}
	}

	s.publishDepth(ctx)
}

// assignOne matches and commits a single execution, retrying within the pass
// when a capacity race is lost. A runner that lost the race is excluded from
// the retry so the pass cannot spin on one stale registry entry.
func (s *Scheduler) assignOne(ctx context.Context, exec *ent.Execution, activeRules []*ent.BalancingRule, loads map[int]float64) bool {
	excluded := make(map[int]bool)

	for attempt := 0; attempt <= s.cfg.AssignRetries; attempt++ {
		candidates := s.fleet.CandidatesFor(exec.RequestedRunnerType, exec.RequestedRunnerID)
		if len(excluded) > 0 {
			kept := candidates[:0]
			for _, c := range candidates {
				if !excluded[c.ID] {
					kept = append(kept, c)
				}
			}
			candidates = kept
		}

		decision, err := s.engine.Select(rules.Input{
			Execution:  exec,
			Candidates: candidates,
			Rules:      activeRules,
			Loads:      loads,
		})
		if err != nil {
			if !errors.Is(err, rules.ErrNoCandidates) {
				s.logger.Error("rule engine failed", "execution_id", exec.ID, "error", err)
			}
			return false
		}

		assigned, err := s.store.AssignExecution(ctx, exec.ID, decision.Runner.ID)
		if err != nil {
			if errors.Is(err, store.ErrPreconditionFailed) {
				// Lost a race: runner filled up, went unhealthy, or the
				// execution was cancelled meanwhile. Retry without this runner.
				excluded[decision.Runner.ID] = true
				continue
			}
			s.logger.Error("assignment failed", "execution_id", exec.ID,
				"runner_id", decision.Runner.ID, "error", err)
			return false
		}

		s.commit(ctx, assigned, decision)
		return true
	}

	s.logger.Warn("assignment retries exhausted, leaving execution queued",
		"execution_id", exec.ID, "retries", s.cfg.AssignRetries)
	return false
}

// commit performs the post-transaction bookkeeping for one assignment:
// advisory counter, round-robin cursor, event, driver dispatch.
func (s *Scheduler) commit(ctx context.Context, exec *ent.Execution, decision rules.Decision) {
	s.fleet.IncInflight(decision.Runner.ID)

	if decision.NextCursor != nil {
		if err := s.store.AdvanceRuleCursor(ctx, decision.Rule.ID, decision.Rule.Cursor, *decision.NextCursor); err != nil {
			s.logger.Warn("failed to advance round-robin cursor",
				"rule_id", decision.Rule.ID, "error", err)
		} else {
			decision.Rule.Cursor = *decision.NextCursor
		}
	}

	rnr, err := s.store.GetRunner(ctx, decision.Runner.ID)
	if err != nil {
		// The assignment is committed; the sweeper will recover the
		// execution if dispatch never happens.
		s.logger.Error("failed to load runner after assignment",
			"execution_id", exec.ID, "runner_id", decision.Runner.ID, "error", err)
		return
	}

	s.logger.Info("execution assigned",
		"execution_id", exec.ID, "runner_id", rnr.ID, "runner_name", rnr.Name)
	s.publisher.ExecutionAssigned(ctx, exec, rnr, decision.Rule)
	s.gateway.Dispatch(exec, rnr)
}

func (s *Scheduler) publishDepth(ctx context.Context) {
	statsCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stats, err := s.store.QueueStats(statsCtx)
	if err != nil {
		s.logger.Warn("failed to snapshot queue stats", "error", err)
		return
	}
	s.publisher.QueueDepth(stats.Queued, stats.Assigned, stats.Running)
}
