package store

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
)

// ApplyRunning records the runner's "running" webhook: assigned → running,
// started_at stamped. Outcome-typed rather than error-typed because every
// non-Applied case is a normal race, not a failure:
//   - already running        → Duplicate (runner retried the webhook)
//   - already terminal       → Stale (webhook outlived the execution)
//   - still queued           → Invalid (running before assignment)
func (s *Store) ApplyRunning(ctx context.Context, execID string, at time.Time) (*ApplyResult, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(execID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load execution: %w", err)
	}

	switch {
	case exec.Status == execution.StatusRunning:
		return &ApplyResult{Execution: exec, Outcome: OutcomeDuplicate}, nil
	case IsTerminal(exec.Status):
		return &ApplyResult{Execution: exec, Outcome: OutcomeStale}, nil
	case exec.Status == execution.StatusQueued:
		return &ApplyResult{Execution: exec, Outcome: OutcomeInvalid}, nil
	}

	if at.IsZero() {
		at = s.clock.Now()
	}

	count, err := tx.Execution.Update().
		Where(
			execution.IDEQ(execID),
			execution.StatusEQ(execution.StatusAssigned),
		).
		SetStatus(execution.StatusRunning).
		SetStartedAt(at).
		SetLastProgressAt(at).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark execution running: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("execution transitioned concurrently: %w", ErrPreconditionFailed)
	}

	exec, err = tx.Execution.Get(writeCtx, execID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit running transition: %w", err)
	}

	return &ApplyResult{Execution: exec, Outcome: OutcomeApplied}, nil
}

// RecordShard upserts one shard's result. Shard indices are 1-based.
// An identical re-delivery is a Duplicate no-op; a different result for an
// already-recorded shard is a Conflict (the runner is contradicting itself).
// A shard result on a still-assigned execution implies the runner skipped
// the running webhook — the transition is applied implicitly.
//
// Completed on the result means this write filled the shard map; the caller
// aggregates and finalizes.
func (s *Store) RecordShard(ctx context.Context, execID string, index int, result models.ShardResult) (*ApplyResult, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(execID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load execution: %w", err)
	}

	if index < 1 || index > exec.TotalShards {
		return nil, NewValidationError("shard_index",
			fmt.Sprintf("must be between 1 and %d, got %d", exec.TotalShards, index))
	}

	key := strconv.Itoa(index)
	shards := exec.ShardResults
	if shards == nil {
		shards = make(map[string]models.ShardResult, exec.TotalShards)
	}

	// An identical re-delivery stays a duplicate no-op even after the
	// execution went terminal; only a novel or contradicting write is stale.
	if prev, ok := shards[key]; ok && reflect.DeepEqual(prev, result) {
		return &ApplyResult{
			Execution: exec,
			Outcome:   OutcomeDuplicate,
			Completed: len(shards) == exec.TotalShards,
		}, nil
	}

	switch {
	case IsTerminal(exec.Status):
		return &ApplyResult{Execution: exec, Outcome: OutcomeStale}, nil
	case exec.Status == execution.StatusQueued:
		return &ApplyResult{Execution: exec, Outcome: OutcomeInvalid}, nil
	}

	if _, ok := shards[key]; ok {
		return nil, fmt.Errorf("shard %d already recorded with a different result: %w",
			index, ErrConflict)
	}
	shards[key] = result

	update := tx.Execution.Update().
		Where(
			execution.IDEQ(execID),
			execution.StatusIn(execution.StatusAssigned, execution.StatusRunning),
		).
		SetShardResults(shards).
		SetLastProgressAt(s.clock.Now())

	// Implicit start: the first shard result doubles as the running signal.
	if exec.Status == execution.StatusAssigned {
		update = update.
			SetStatus(execution.StatusRunning).
			SetStartedAt(s.clock.Now())
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record shard result: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("execution transitioned concurrently: %w", ErrPreconditionFailed)
	}

	exec, err = tx.Execution.Get(writeCtx, execID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit shard result: %w", err)
	}

	return &ApplyResult{
		Execution: exec,
		Outcome:   OutcomeApplied,
		Completed: len(shards) == exec.TotalShards,
	}, nil
}

// FinalizeExecution moves an assigned/running execution to a terminal state
// and releases its live allocation in the same transaction. Repeating an
// identical finalization is a Duplicate no-op; any other write against a
// terminal row is Stale. aggregated may be nil (error and timeout terminals).
func (s *Store) FinalizeExecution(ctx context.Context, execID string, status execution.Status, aggregated *models.AggregatedResults, reason string) (*ApplyResult, error) {
	if !IsTerminal(status) {
		return nil, NewValidationError("status", fmt.Sprintf("%q is not a terminal status", status))
	}

	writeCtx, cancel := writeCtx()
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(execID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load execution: %w", err)
	}

	switch {
	case IsTerminal(exec.Status):
		if exec.Status == status && exec.StatusReason == reason {
			return &ApplyResult{Execution: exec, Outcome: OutcomeDuplicate}, nil
		}
		return &ApplyResult{Execution: exec, Outcome: OutcomeStale}, nil
	case exec.Status == execution.StatusQueued:
		return &ApplyResult{Execution: exec, Outcome: OutcomeInvalid}, nil
	}

	update := tx.Execution.Update().
		Where(
			execution.IDEQ(execID),
			execution.StatusIn(execution.StatusAssigned, execution.StatusRunning),
		).
		SetStatus(status).
		SetStatusReason(reason).
		SetCompletedAt(s.clock.Now())
	if aggregated != nil {
		update = update.SetAggregatedResults(aggregated)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize execution: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("execution transitioned concurrently: %w", ErrPreconditionFailed)
	}

	if err := s.releaseAllocation(writeCtx, tx, execID); err != nil {
		return nil, err
	}

	exec, err = tx.Execution.Get(writeCtx, execID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit finalization: %w", err)
	}

	return &ApplyResult{Execution: exec, Outcome: OutcomeApplied}, nil
}

// ListOverdueExecutions returns executions the completion sweeper should
// finalize: running with no shard progress since before idleBefore, or
// assigned since before assignedBefore without ever starting. A run that
// keeps posting shard results stays alive however long it takes.
func (s *Store) ListOverdueExecutions(ctx context.Context, idleBefore, assignedBefore time.Time, limit int) ([]*ent.Execution, error) {
	items, err := s.client.Execution.Query().
		Where(
			execution.Or(
				execution.And(
					execution.StatusEQ(execution.StatusRunning),
					execution.Or(
						execution.LastProgressAtLT(idleBefore),
						execution.And(
							execution.LastProgressAtIsNil(),
							execution.StartedAtLT(idleBefore),
						),
					),
				),
				execution.And(
					execution.StatusEQ(execution.StatusAssigned),
					execution.AssignedAtLT(assignedBefore),
				),
			),
		).
		Order(ent.Asc(execution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue executions: %w", err)
	}
	return items, nil
}
