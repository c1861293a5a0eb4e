package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// CreateRunnerInput carries everything POST /runners accepts.
type CreateRunnerInput struct {
	Name              string
	Type              string
	EndpointURL       string
	HealthCheckURL    string
	Capabilities      []string
	MaxConcurrentJobs int
	Priority          int
	Metadata          map[string]any
}

// CreateRunner registers a runner and mints its webhook token. The name is
// a natural key; re-registering it is ErrAlreadyExists, never a silent
// second identity for the same fleet member.
func (s *Store) CreateRunner(ctx context.Context, in CreateRunnerInput) (*ent.Runner, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if in.EndpointURL == "" {
		return nil, NewValidationError("endpoint_url", "required")
	}
	if in.MaxConcurrentJobs < 0 {
		return nil, NewValidationError("max_concurrent_jobs", "must be at least 1")
	}
	if in.MaxConcurrentJobs == 0 {
		in.MaxConcurrentJobs = 1
	}

	writeCtx, cancel := writeCtx()
	defer cancel()

	create := s.client.Runner.Create().
		SetName(in.Name).
		SetType(in.Type).
		SetEndpointURL(in.EndpointURL).
		SetWebhookToken(uuid.New().String()).
		SetMaxConcurrentJobs(in.MaxConcurrentJobs).
		SetPriority(in.Priority).
		SetCreatedAt(s.clock.Now()).
		SetUpdatedAt(s.clock.Now())

	if in.HealthCheckURL != "" {
		create = create.SetHealthCheckURL(in.HealthCheckURL)
	}
	if in.Capabilities != nil {
		create = create.SetCapabilities(in.Capabilities)
	}
	if in.Metadata != nil {
		create = create.SetMetadata(in.Metadata)
	}

	r, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("runner %q already registered: %w", in.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return r, nil
}

// UpdateRunnerInput is a partial patch; nil fields are left untouched.
type UpdateRunnerInput struct {
	Name              *string
	EndpointURL       *string
	HealthCheckURL    *string
	Capabilities      []string
	MaxConcurrentJobs *int
	Priority          *int
	Metadata          map[string]any
}

// UpdateRunner applies a partial patch to a runner.
func (s *Store) UpdateRunner(ctx context.Context, id int, in UpdateRunnerInput) (*ent.Runner, error) {
	if in.MaxConcurrentJobs != nil && *in.MaxConcurrentJobs < 1 {
		return nil, NewValidationError("max_concurrent_jobs", "must be at least 1")
	}
	if in.Name != nil && *in.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	writeCtx, cancel := writeCtx()
	defer cancel()

	update := s.client.Runner.UpdateOneID(id).
		SetNillableName(in.Name).
		SetNillableEndpointURL(in.EndpointURL).
		SetNillableHealthCheckURL(in.HealthCheckURL).
		SetNillableMaxConcurrentJobs(in.MaxConcurrentJobs).
		SetNillablePriority(in.Priority).
		SetUpdatedAt(s.clock.Now())

	if in.Capabilities != nil {
		update = update.SetCapabilities(in.Capabilities)
	}
	if in.Metadata != nil {
		update = update.SetMetadata(in.Metadata)
	}

	r, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("runner name already taken: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update runner: %w", err)
	}
	return r, nil
}

// SetRunnerStatus drives the runner lifecycle: active ↔ paused, either →
// decommissioned. Decommissioned is terminal — transitions out are ErrConflict.
func (s *Store) SetRunnerStatus(ctx context.Context, id int, status runner.Status) (*ent.Runner, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Runner.Query().
		Where(runner.IDEQ(id)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load runner: %w", err)
	}

	if r.Status == runner.StatusDecommissioned {
		return nil, fmt.Errorf("runner %d is decommissioned: %w", id, ErrConflict)
	}

	r, err = tx.Runner.UpdateOneID(id).
		SetStatus(status).
		SetUpdatedAt(s.clock.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to set runner status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit runner status: %w", err)
	}
	return r, nil
}

// GetRunner fetches a single runner by id.
func (s *Store) GetRunner(ctx context.Context, id int) (*ent.Runner, error) {
	r, err := s.client.Runner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get runner: %w", err)
	}
	return r, nil
}

// ListRunners returns runners matching the filter, ordered by id.
func (s *Store) ListRunners(ctx context.Context, f models.RunnerFilter) ([]*ent.Runner, error) {
	query := s.client.Runner.Query()

	if f.Type != "" {
		query = query.Where(runner.TypeEQ(f.Type))
	}
	if f.Status != "" {
		st := runner.Status(f.Status)
		if err := runner.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", "unknown status")
		}
		query = query.Where(runner.StatusEQ(st))
	}
	if f.Health != "" {
		h := runner.Health(f.Health)
		if err := runner.HealthValidator(h); err != nil {
			return nil, NewValidationError("health", "unknown health")
		}
		query = query.Where(runner.HealthEQ(h))
	}

	items, err := query.Order(ent.Asc(runner.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runners: %w", err)
	}
	return items, nil
}

// ListActiveRunners returns the prober's working set.
func (s *Store) ListActiveRunners(ctx context.Context) ([]*ent.Runner, error) {
	items, err := s.client.Runner.Query().
		Where(runner.StatusEQ(runner.StatusActive)).
		Order(ent.Asc(runner.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active runners: %w", err)
	}
	return items, nil
}

// HealthSampleInput is one probe observation.
type HealthSampleInput struct {
	Health    runner.Health
	LatencyMs int64
	Error     string
}

// RecordHealthSample appends one probe result to the sample trail and stamps
// the runner's last_health_check_at. The runner's health column is only
// flipped by SetRunnerHealth — the prober's flap damper decides when.
func (s *Store) RecordHealthSample(ctx context.Context, runnerID int, in HealthSampleInput) error {
	writeCtx, cancel := writeCtx()
	defer cancel()

	create := s.client.HealthSample.Create().
		SetRunnerID(runnerID).
		SetHealth(healthsample.Health(in.Health)).
		SetLatencyMs(in.LatencyMs).
		SetCheckedAt(s.clock.Now())
	if in.Error != "" {
		create = create.SetError(in.Error)
	}
	if err := create.Exec(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("runner %d: %w", runnerID, ErrNotFound)
		}
		return fmt.Errorf("failed to record health sample: %w", err)
	}

	err := s.client.Runner.UpdateOneID(runnerID).
		SetLastHealthCheckAt(s.clock.Now()).
		Exec(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to stamp health check time: %w", err)
	}
	return nil
}

// SetRunnerHealth flips the runner's health column. Returns the updated row.
func (s *Store) SetRunnerHealth(ctx context.Context, runnerID int, h runner.Health) (*ent.Runner, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	r, err := s.client.Runner.UpdateOneID(runnerID).
		SetHealth(h).
		SetUpdatedAt(s.clock.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set runner health: %w", err)
	}
	return r, nil
}

// InflightByRunner counts live allocations per runner. Used to rebuild the
// registry's advisory counters on boot and after drift.
func (s *Store) InflightByRunner(ctx context.Context) (map[int]int, error) {
	allocs, err := s.client.ResourceAllocation.Query().
		Where(resourceallocation.StateEQ(resourceallocation.StateAllocated)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query live allocations: %w", err)
	}

	counts := make(map[int]int, len(allocs))
	for _, a := range allocs {
		counts[a.RunnerID]++
	}
	return counts, nil
}

// AllocationLoadByRunner computes the advisory load score per runner over
// live allocations: Σ cpu_allocated + Σ memory_allocated / 1024.
func (s *Store) AllocationLoadByRunner(ctx context.Context) (map[int]float64, error) {
	allocs, err := s.client.ResourceAllocation.Query().
		Where(resourceallocation.StateEQ(resourceallocation.StateAllocated)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query live allocations: %w", err)
	}

	loads := make(map[int]float64, len(allocs))
	for _, a := range allocs {
		loads[a.RunnerID] += a.CPUAllocated + a.MemoryAllocated/1024
	}
	return loads, nil
}

// QueueStats snapshots queue depth for GET /queue/status and the queue.depth
// event. Counts come from the executions table, not the registry — the
// registry is advisory, the Store is the authority.
func (s *Store) QueueStats(ctx context.Context) (*models.QueueStats, error) {
	stats := &models.QueueStats{}

	var err error
	if stats.Queued, err = s.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusQueued)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count queued executions: %w", err)
	}
	if stats.Assigned, err = s.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusAssigned)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count assigned executions: %w", err)
	}
	if stats.Running, err = s.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusRunning)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count running executions: %w", err)
	}

	if stats.Queued > 0 {
		oldest, err := s.client.Execution.Query().
			Where(execution.StatusEQ(execution.StatusQueued)).
			Order(ent.Asc(execution.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to find oldest queued execution: %w", err)
		}
		if oldest != nil {
			stats.OldestQueuedAgeMs = s.clock.Now().Sub(oldest.CreatedAt).Milliseconds()
		}
	}

	if stats.InflightByRunner, err = s.InflightByRunner(ctx); err != nil {
		return nil, err
	}
	if stats.LoadByRunner, err = s.AllocationLoadByRunner(ctx); err != nil {
		return nil, err
	}

	active, err := s.client.Runner.Query().
		Where(runner.StatusEQ(runner.StatusActive)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active runners: %w", err)
	}
	stats.Runners.Active = len(active)
	for _, rnr := range active {
		stats.Runners.TotalCapacity += rnr.MaxConcurrentJobs
	}
	if stats.Runners.TotalCapacity > 0 {
		occupied := stats.Assigned + stats.Running
		stats.Runners.UtilizationRate = float64(occupied) / float64(stats.Runners.TotalCapacity)
	}

	return stats, nil
}
