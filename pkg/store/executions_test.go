package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
	testdb "github.com/baton-ci/baton/test/database"
)

func TestCreateExecution(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("requires test_suite", func(t *testing.T) {
		_, err := s.CreateExecution(ctx, CreateExecutionInput{Environment: "staging"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires environment", func(t *testing.T) {
		_, err := s.CreateExecution(ctx, CreateExecutionInput{TestSuite: "smoke"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects priority out of range", func(t *testing.T) {
		bad := 101
		_, err := s.CreateExecution(ctx, CreateExecutionInput{
			TestSuite: "smoke", Environment: "staging", Priority: &bad,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects negative shards", func(t *testing.T) {
		_, err := s.CreateExecution(ctx, CreateExecutionInput{
			TestSuite: "smoke", Environment: "staging", TotalShards: -1,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("applies defaults", func(t *testing.T) {
		exec, err := s.CreateExecution(ctx, CreateExecutionInput{
			TestSuite:   "smoke",
			Environment: "staging",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, exec.ID)
		assert.Equal(t, execution.StatusQueued, exec.Status)
		assert.Equal(t, 50, exec.Priority)
		assert.Equal(t, 1, exec.TotalShards)
		assert.Equal(t, testEpoch, exec.CreatedAt.UTC())
	})

	t.Run("idempotency key collision", func(t *testing.T) {
		in := CreateExecutionInput{
			TestSuite:      "smoke",
			Environment:    "staging",
			IdempotencyKey: "run-2025-06-01-a",
		}
		_, err := s.CreateExecution(ctx, in)
		require.NoError(t, err)

		_, err = s.CreateExecution(ctx, in)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestGetExecution(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	exec := mustCreateExecution(t, s, "smoke")
	got, err := s.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, exec.ID, got.ID)

	_, err = s.GetExecution(ctx, "no-such-execution")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListExecutions(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()

	for i, suite := range []string{"smoke", "smoke", "regression"} {
		env := "staging"
		if i == 2 {
			env = "prod-eu"
		}
		_, err := s.CreateExecution(ctx, CreateExecutionInput{TestSuite: suite, Environment: env})
		require.NoError(t, err)
		clk.Step(time.Second)
	}

	t.Run("filter by test suite", func(t *testing.T) {
		items, total, err := s.ListExecutions(ctx, models.ExecutionFilter{TestSuite: "smoke"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, items, 2)
	})

	t.Run("filter by environment", func(t *testing.T) {
		items, total, err := s.ListExecutions(ctx, models.ExecutionFilter{Environment: "prod-eu"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "regression", items[0].TestSuite)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, _, err := s.ListExecutions(ctx, models.ExecutionFilter{Status: "sideways"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("pages newest first", func(t *testing.T) {
		page1, total, err := s.ListExecutions(ctx, models.ExecutionFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page1, 2)
		assert.Equal(t, "regression", page1[0].TestSuite, "latest submission first")

		page2, _, err := s.ListExecutions(ctx, models.ExecutionFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page2, 1)
	})
}

func TestCancelExecution(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("cancels a queued execution", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")

		cancelled, prior, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)
		assert.Equal(t, execution.StatusQueued, prior)
		assert.Equal(t, execution.StatusCancelled, cancelled.Status)
		assert.Equal(t, "client_cancelled", cancelled.StatusReason)
		require.NotNil(t, cancelled.CompletedAt)
	})

	t.Run("terminal execution conflicts", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		_, _, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)

		_, prior, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, execution.StatusCancelled, prior)
	})

	t.Run("unknown execution", func(t *testing.T) {
		_, _, err := s.CancelExecution(ctx, "no-such-execution", "client_cancelled")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("releases the live allocation", func(t *testing.T) {
		r := mustCreateRunner(t, s, "cancel-runner", 2)
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)

		_, prior, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)
		assert.Equal(t, execution.StatusAssigned, prior)

		live, err := s.client.ResourceAllocation.Query().
			Where(
				resourceallocation.ExecutionIDEQ(exec.ID),
				resourceallocation.StateEQ(resourceallocation.StateAllocated),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, live)
	})
}

func TestClaimCandidates(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()

	submit := func(suite string, priority int) string {
		exec, err := s.CreateExecution(ctx, CreateExecutionInput{
			TestSuite:   suite,
			Environment: "staging",
			Priority:    &priority,
		})
		require.NoError(t, err)
		clk.Step(time.Second)
		return exec.ID
	}

	low := submit("low", 10)
	highOld := submit("high-old", 90)
	highNew := submit("high-new", 90)

	// Assigned executions leave the candidate set.
	r := mustCreateRunner(t, s, "claim-runner", 5)
	assigned := submit("assigned", 95)
	mustAssign(t, s, assigned, r.ID)

	candidates, err := s.ClaimCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, highOld, candidates[0].ID, "priority first, then submission order")
	assert.Equal(t, highNew, candidates[1].ID)
	assert.Equal(t, low, candidates[2].ID)

	limited, err := s.ClaimCandidates(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAssignExecution(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("binds execution and allocation", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner", 2)
		exec := mustCreateExecution(t, s, "smoke")

		assigned, err := s.AssignExecution(ctx, exec.ID, r.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusAssigned, assigned.Status)
		require.NotNil(t, assigned.AssignedRunnerID)
		assert.Equal(t, r.ID, *assigned.AssignedRunnerID)
		require.NotNil(t, assigned.AssignedAt)

		alloc, err := s.client.ResourceAllocation.Query().
			Where(resourceallocation.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, resourceallocation.StateAllocated, alloc.State)
		assert.Equal(t, 1.0, alloc.CPUAllocated)
		assert.Equal(t, 512.0, alloc.MemoryAllocated)
	})

	t.Run("allocation estimate from metadata", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner-meta", 2)
		exec, err := s.CreateExecution(ctx, CreateExecutionInput{
			TestSuite:   "smoke",
			Environment: "staging",
			Metadata:    map[string]any{"cpu": 2.0, "memory_mb": 2048.0},
		})
		require.NoError(t, err)

		_, err = s.AssignExecution(ctx, exec.ID, r.ID)
		require.NoError(t, err)

		alloc, err := s.client.ResourceAllocation.Query().
			Where(resourceallocation.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2.0, alloc.CPUAllocated)
		assert.Equal(t, 2048.0, alloc.MemoryAllocated)
	})

	t.Run("runner at capacity", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner-full", 1)
		first := mustCreateExecution(t, s, "smoke")
		second := mustCreateExecution(t, s, "smoke")

		mustAssign(t, s, first.ID, r.ID)
		_, err := s.AssignExecution(ctx, second.ID, r.ID)
		require.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("paused runner", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner-paused", 1)
		_, err := s.SetRunnerStatus(ctx, r.ID, runner.StatusPaused)
		require.NoError(t, err)

		exec := mustCreateExecution(t, s, "smoke")
		_, err = s.AssignExecution(ctx, exec.ID, r.ID)
		require.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("unhealthy runner", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner-sick", 1)
		_, err := s.SetRunnerHealth(ctx, r.ID, runner.HealthUnhealthy)
		require.NoError(t, err)

		exec := mustCreateExecution(t, s, "smoke")
		_, err = s.AssignExecution(ctx, exec.ID, r.ID)
		require.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("execution no longer queued", func(t *testing.T) {
		r := mustCreateRunner(t, s, "assign-runner-late", 2)
		exec := mustCreateExecution(t, s, "smoke")
		_, _, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)

		_, err = s.AssignExecution(ctx, exec.ID, r.ID)
		require.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("unknown runner", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		_, err := s.AssignExecution(ctx, exec.ID, 99999)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

// TestAssignExecutionConcurrentPools races two independent connection pools
// for a runner's last slot. The runner-row lock must let exactly one win.
func TestAssignExecutionConcurrentPools(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clk := testingclock.NewFakeClock(testEpoch)

	storeA := New(shared.NewClient(t).Client, clk)
	storeB := New(shared.NewClient(t).Client, clk)
	ctx := context.Background()

	r := mustCreateRunner(t, storeA, "contended-runner", 1)
	execA := mustCreateExecution(t, storeA, "smoke")
	execB := mustCreateExecution(t, storeA, "smoke")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = storeA.AssignExecution(ctx, execA.ID, r.ID)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = storeB.AssignExecution(ctx, execB.ID, r.ID)
	}()
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, ErrPreconditionFailed)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one pool may take the last slot")
	assert.Equal(t, 1, losses)
}
