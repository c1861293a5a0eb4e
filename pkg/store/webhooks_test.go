package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/pkg/models"
)

func passedShard(total int) models.ShardResult {
	return models.ShardResult{Status: models.ResultPassed, Total: total, Passed: total}
}

func TestApplyRunning(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "running-runner", 10)

	t.Run("applies on assigned", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)

		at := testEpoch.Add(3 * time.Second)
		res, err := s.ApplyRunning(ctx, exec.ID, at)
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.Equal(t, execution.StatusRunning, res.Execution.Status)
		require.NotNil(t, res.Execution.StartedAt)
		assert.Equal(t, at, res.Execution.StartedAt.UTC())
	})

	t.Run("retry is a duplicate", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, err := s.ApplyRunning(ctx, exec.ID, time.Time{})
		require.NoError(t, err)

		res, err := s.ApplyRunning(ctx, exec.ID, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, res.Outcome)
	})

	t.Run("queued is invalid", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")

		res, err := s.ApplyRunning(ctx, exec.ID, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, OutcomeInvalid, res.Outcome)
		assert.Equal(t, execution.StatusQueued, res.Execution.Status)
	})

	t.Run("terminal is stale", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, _, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)

		res, err := s.ApplyRunning(ctx, exec.ID, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, OutcomeStale, res.Outcome)
	})

	t.Run("unknown execution", func(t *testing.T) {
		_, err := s.ApplyRunning(ctx, "no-such-execution", time.Time{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRecordShard(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "shard-runner", 10)

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)

		_, err := s.RecordShard(ctx, exec.ID, 0, passedShard(10))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = s.RecordShard(ctx, exec.ID, 2, passedShard(10))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("first shard result implies running", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)

		res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.True(t, res.Completed, "single-shard execution completes on its only shard")
		assert.Equal(t, execution.StatusRunning, res.Execution.Status)
		require.NotNil(t, res.Execution.StartedAt)
	})

	t.Run("identical redelivery is a duplicate", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)

		res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, res.Outcome)
		assert.True(t, res.Completed)
	})

	t.Run("contradicting result is a conflict", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)

		_, err = s.RecordShard(ctx, exec.ID, 1, models.ShardResult{
			Status: models.ResultFailed, Total: 10, Passed: 9, Failed: 1,
		})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("queued is invalid", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		assert.Equal(t, OutcomeInvalid, res.Outcome)
	})

	t.Run("terminal is stale", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, _, err := s.CancelExecution(ctx, exec.ID, "client_cancelled")
		require.NoError(t, err)

		res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		assert.Equal(t, OutcomeStale, res.Outcome)
	})

	t.Run("identical redelivery after terminal stays a duplicate", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		_, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		_, err = s.FinalizeExecution(ctx, exec.ID, execution.StatusCompleted, nil, "")
		require.NoError(t, err)

		res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(10))
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, res.Outcome)
		assert.True(t, res.Completed)
	})
}

func TestRecordShardMultiShard(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "multi-shard-runner", 10)

	exec, err := s.CreateExecution(ctx, CreateExecutionInput{
		TestSuite:   "regression",
		Environment: "staging",
		TotalShards: 3,
	})
	require.NoError(t, err)
	mustAssign(t, s, exec.ID, r.ID)

	res, err := s.RecordShard(ctx, exec.ID, 1, passedShard(40))
	require.NoError(t, err)
	assert.False(t, res.Completed)

	res, err = s.RecordShard(ctx, exec.ID, 3, passedShard(30))
	require.NoError(t, err)
	assert.False(t, res.Completed, "shards may land out of order; two of three is not done")

	res, err = s.RecordShard(ctx, exec.ID, 2, models.ShardResult{
		Status: models.ResultFailed, Total: 30, Passed: 23, Failed: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, res.Outcome)
	assert.True(t, res.Completed)
	assert.Len(t, res.Execution.ShardResults, 3)
}

func TestFinalizeExecution(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "final-runner", 10)

	startRunning := func(t *testing.T) *ent.Execution {
		exec := mustCreateExecution(t, s, "smoke")
		mustAssign(t, s, exec.ID, r.ID)
		res, err := s.ApplyRunning(ctx, exec.ID, time.Time{})
		require.NoError(t, err)
		return res.Execution
	}

	t.Run("rejects non-terminal status", func(t *testing.T) {
		exec := startRunning(t)
		_, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusRunning, nil, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("applies with aggregated results", func(t *testing.T) {
		exec := startRunning(t)
		agg := &models.AggregatedResults{
			Status: models.ResultPassed, Total: 100, Passed: 100, Shards: 1,
		}

		res, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusCompleted, agg, "all shards passed")
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.Equal(t, execution.StatusCompleted, res.Execution.Status)
		require.NotNil(t, res.Execution.CompletedAt)
		require.NotNil(t, res.Execution.AggregatedResults)
		assert.Equal(t, 100, res.Execution.AggregatedResults.Passed)

		live, err := s.client.ResourceAllocation.Query().
			Where(
				resourceallocation.ExecutionIDEQ(exec.ID),
				resourceallocation.StateEQ(resourceallocation.StateAllocated),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, live, "finalization releases the live allocation")
	})

	t.Run("identical repeat is a duplicate", func(t *testing.T) {
		exec := startRunning(t)
		_, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusFailed, nil, "7 tests failed")
		require.NoError(t, err)

		res, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusFailed, nil, "7 tests failed")
		require.NoError(t, err)
		assert.Equal(t, OutcomeDuplicate, res.Outcome)
	})

	t.Run("different terminal after terminal is stale", func(t *testing.T) {
		exec := startRunning(t)
		_, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusCompleted, nil, "done")
		require.NoError(t, err)

		res, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusFailed, nil, "late failure")
		require.NoError(t, err)
		assert.Equal(t, OutcomeStale, res.Outcome)
		assert.Equal(t, execution.StatusCompleted, res.Execution.Status, "first terminal wins")
	})

	t.Run("queued is invalid", func(t *testing.T) {
		exec := mustCreateExecution(t, s, "smoke")
		res, err := s.FinalizeExecution(ctx, exec.ID, execution.StatusError, nil, "runner exploded")
		require.NoError(t, err)
		assert.Equal(t, OutcomeInvalid, res.Outcome)
	})

	t.Run("unknown execution", func(t *testing.T) {
		_, err := s.FinalizeExecution(ctx, "no-such-execution", execution.StatusError, nil, "")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListOverdueExecutions(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "overdue-runner", 10)

	// Started at the epoch, still running.
	stuck := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, stuck.ID, r.ID)
	_, err := s.ApplyRunning(ctx, stuck.ID, time.Time{})
	require.NoError(t, err)

	// Assigned at the epoch, never started.
	ghost := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, ghost.ID, r.ID)

	// Started at the epoch as well, but keeps posting shard results.
	active := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, active.ID, r.ID)
	_, err = s.ApplyRunning(ctx, active.ID, time.Time{})
	require.NoError(t, err)

	clk.Step(2 * time.Hour)

	// Fresh assignment after the cutoffs.
	fresh := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, fresh.ID, r.ID)

	// Recent shard progress resets the idle clock for the long run.
	_, err = s.RecordShard(ctx, active.ID, 1, passedShard(5))
	require.NoError(t, err)

	cutoff := testEpoch.Add(time.Hour)
	overdue, err := s.ListOverdueExecutions(ctx, cutoff, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, overdue, 2)

	ids := []string{overdue[0].ID, overdue[1].ID}
	assert.Contains(t, ids, stuck.ID)
	assert.Contains(t, ids, ghost.ID)
	assert.NotContains(t, ids, fresh.ID)
	assert.NotContains(t, ids, active.ID)

	none, err := s.ListOverdueExecutions(ctx, testEpoch.Add(-time.Hour), testEpoch.Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
