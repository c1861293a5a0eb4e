package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// CreateExecutionInput carries everything POST /executions accepts.
type CreateExecutionInput struct {
	TestSuite           string
	Environment         string
	Branch              string
	CommitSHA           string
	RequestedBy         string
	Priority            *int
	EstimatedDurationMs *int64
	RequestedRunnerType *string
	RequestedRunnerID   *int
	TotalShards         int
	IdempotencyKey      string
	WebhookURL          string
	Metadata            map[string]any
}

// CreateExecution inserts a new execution in status queued.
// Returns ErrAlreadyExists on a duplicate idempotency key.
func (s *Store) CreateExecution(ctx context.Context, in CreateExecutionInput) (*ent.Execution, error) {
	if in.TestSuite == "" {
		return nil, NewValidationError("test_suite", "required")
	}
	if in.Environment == "" {
		return nil, NewValidationError("environment", "required")
	}
	if in.Priority != nil && (*in.Priority < 0 || *in.Priority > 100) {
		return nil, NewValidationError("priority", "must be between 0 and 100")
	}
	if in.TotalShards < 0 {
		return nil, NewValidationError("total_shards", "must be at least 1")
	}
	if in.TotalShards == 0 {
		in.TotalShards = 1
	}
	if in.RequestedRunnerID != nil && *in.RequestedRunnerID <= 0 {
		return nil, NewValidationError("requested_runner_id", "must be positive")
	}

	// Detached context: an HTTP disconnect must not abort the insert.
	writeCtx, cancel := writeCtx()
	defer cancel()

	create := s.client.Execution.Create().
		SetID(uuid.New().String()).
		SetTestSuite(in.TestSuite).
		SetEnvironment(in.Environment).
		SetBranch(in.Branch).
		SetCommitSha(in.CommitSHA).
		SetRequestedBy(in.RequestedBy).
		SetTotalShards(in.TotalShards).
		SetWebhookURL(in.WebhookURL).
		SetCreatedAt(s.clock.Now()).
		SetNillableEstimatedDurationMs(in.EstimatedDurationMs).
		SetNillableRequestedRunnerType(in.RequestedRunnerType).
		SetNillableRequestedRunnerID(in.RequestedRunnerID)

	if in.Priority != nil {
		create = create.SetPriority(*in.Priority)
	}
	if in.IdempotencyKey != "" {
		create = create.SetIdempotencyKey(in.IdempotencyKey)
	}
	if in.Metadata != nil {
		create = create.SetMetadata(in.Metadata)
	}

	exec, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("idempotency key %q already used: %w", in.IdempotencyKey, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	return exec, nil
}

// GetExecution fetches a single execution by id.
func (s *Store) GetExecution(ctx context.Context, id string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// ListExecutions returns a filtered page plus the unpaged total.
func (s *Store) ListExecutions(ctx context.Context, f models.ExecutionFilter) ([]*ent.Execution, int, error) {
	query := s.client.Execution.Query()

	if f.Status != "" {
		st := execution.Status(f.Status)
		if err := execution.StatusValidator(st); err != nil {
			return nil, 0, NewValidationError("status", "unknown status")
		}
		query = query.Where(execution.StatusEQ(st))
	}
	if f.TestSuite != "" {
		query = query.Where(execution.TestSuiteEQ(f.TestSuite))
	}
	if f.Environment != "" {
		query = query.Where(execution.EnvironmentEQ(f.Environment))
	}
	if f.RunnerID != 0 {
		query = query.Where(execution.AssignedRunnerIDEQ(f.RunnerID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	items, err := query.
		Order(ent.Desc(execution.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}

	return items, total, nil
}

// CancelExecution moves a non-terminal execution to cancelled and releases
// its live allocation in the same transaction. Returns the updated row and
// the status it held before cancellation, so the caller can decide whether
// a driver-side cancel is worth firing.
func (s *Store) CancelExecution(ctx context.Context, id, reason string) (*ent.Execution, execution.Status, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(id)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to load execution: %w", err)
	}

	prior := exec.Status
	if IsTerminal(prior) {
		return nil, prior, fmt.Errorf("execution already %s: %w", prior, ErrConflict)
	}

	// Conditional update: only cancel if still in the observed state.
	count, err := tx.Execution.Update().
		Where(
			execution.IDEQ(id),
			execution.StatusEQ(prior),
		).
		SetStatus(execution.StatusCancelled).
		SetStatusReason(reason).
		SetCompletedAt(s.clock.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, prior, fmt.Errorf("failed to cancel execution: %w", err)
	}
	if count == 0 {
		return nil, prior, fmt.Errorf("execution transitioned concurrently: %w", ErrPreconditionFailed)
	}

	if err := s.releaseAllocation(writeCtx, tx, id); err != nil {
		return nil, prior, err
	}

	exec, err = tx.Execution.Get(writeCtx, id)
	if err != nil {
		return nil, prior, fmt.Errorf("failed to refetch execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, prior, fmt.Errorf("failed to commit cancel: %w", err)
	}

	return exec, prior, nil
}

// ClaimCandidates returns the scheduler's batch: queued executions in
// dispatch order (priority first, then submission time). A plain read —
// the single scheduler goroutine is the only assignment writer, and the
// assign transaction re-checks everything anyway.
func (s *Store) ClaimCandidates(ctx context.Context, limit int) ([]*ent.Execution, error) {
	items, err := s.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusQueued)).
		Order(ent.Desc(execution.FieldPriority), ent.Asc(execution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query queued executions: %w", err)
	}
	return items, nil
}

// AssignExecution binds a queued execution to a runner: capacity check,
// status transition, and allocation insert in one transaction. The runner
// row is locked first, which serializes concurrent capacity checks for the
// same runner without needing serializable isolation.
//
// ErrPreconditionFailed covers every losable race: runner no longer active,
// turned unhealthy, at capacity, or the execution left queued.
func (s *Store) AssignExecution(ctx context.Context, execID string, runnerID int) (*ent.Execution, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Runner.Query().
		Where(runner.IDEQ(runnerID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("runner %d: %w", runnerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock runner: %w", err)
	}

	if r.Status != runner.StatusActive {
		return nil, fmt.Errorf("runner %d is %s: %w", runnerID, r.Status, ErrPreconditionFailed)
	}
	if r.Health == runner.HealthUnhealthy {
		return nil, fmt.Errorf("runner %d is unhealthy: %w", runnerID, ErrPreconditionFailed)
	}

	inflight, err := tx.ResourceAllocation.Query().
		Where(
			resourceallocation.RunnerIDEQ(runnerID),
			resourceallocation.StateEQ(resourceallocation.StateAllocated),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count live allocations: %w", err)
	}
	if inflight >= r.MaxConcurrentJobs {
		return nil, fmt.Errorf("runner %d at capacity (%d/%d): %w",
			runnerID, inflight, r.MaxConcurrentJobs, ErrPreconditionFailed)
	}

	now := s.clock.Now()

	// Conditional update: only assign if still queued.
	count, err := tx.Execution.Update().
		Where(
			execution.IDEQ(execID),
			execution.StatusEQ(execution.StatusQueued),
		).
		SetStatus(execution.StatusAssigned).
		SetAssignedRunnerID(runnerID).
		SetAssignedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign execution: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("execution %s left queued state: %w", execID, ErrPreconditionFailed)
	}

	exec, err := tx.Execution.Get(ctx, execID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch execution: %w", err)
	}

	cpu, mem := allocationEstimate(exec)
	_, err = tx.ResourceAllocation.Create().
		SetExecutionID(execID).
		SetRunnerID(runnerID).
		SetCPUAllocated(cpu).
		SetMemoryAllocated(mem).
		SetAllocatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}

	return exec, nil
}

// allocationEstimate derives advisory resource numbers from execution
// metadata, defaulting to one CPU unit and 512 MB.
func allocationEstimate(exec *ent.Execution) (cpu, mem float64) {
	cpu, mem = 1.0, 512
	if exec.Metadata == nil {
		return cpu, mem
	}
	if v, ok := exec.Metadata["cpu"].(float64); ok && v > 0 {
		cpu = v
	}
	if v, ok := exec.Metadata["memory_mb"].(float64); ok && v > 0 {
		mem = v
	}
	return cpu, mem
}

// releaseAllocation flips the live allocation (if any) to released.
func (s *Store) releaseAllocation(ctx context.Context, tx *ent.Tx, execID string) error {
	_, err := tx.ResourceAllocation.Update().
		Where(
			resourceallocation.ExecutionIDEQ(execID),
			resourceallocation.StateEQ(resourceallocation.StateAllocated),
		).
		SetState(resourceallocation.StateReleased).
		SetReleasedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release allocation: %w", err)
	}
	return nil
}
