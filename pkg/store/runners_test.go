package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

func TestCreateRunner(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("requires name, type and endpoint", func(t *testing.T) {
		for _, in := range []CreateRunnerInput{
			{Type: "webhook", EndpointURL: "http://r.local"},
			{Name: "r", EndpointURL: "http://r.local"},
			{Name: "r", Type: "webhook"},
		} {
			_, err := s.CreateRunner(ctx, in)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		}
	})

	t.Run("applies defaults and mints a token", func(t *testing.T) {
		r, err := s.CreateRunner(ctx, CreateRunnerInput{
			Name:        "playwright-pool-1",
			Type:        "webhook",
			EndpointURL: "http://pool-1.local/start",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, r.MaxConcurrentJobs)
		assert.Equal(t, runner.StatusActive, r.Status)
		assert.Equal(t, runner.HealthUnknown, r.Health)
		assert.NotEmpty(t, r.WebhookToken)
	})

	t.Run("name is a natural key", func(t *testing.T) {
		in := CreateRunnerInput{
			Name:        "dup-runner",
			Type:        "webhook",
			EndpointURL: "http://dup.local/start",
		}
		_, err := s.CreateRunner(ctx, in)
		require.NoError(t, err)

		_, err = s.CreateRunner(ctx, in)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUpdateRunner(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	r := mustCreateRunner(t, s, "patch-runner", 1)

	t.Run("partial patch", func(t *testing.T) {
		slots := 4
		prio := 10
		updated, err := s.UpdateRunner(ctx, r.ID, UpdateRunnerInput{
			MaxConcurrentJobs: &slots,
			Priority:          &prio,
			Capabilities:      []string{"chromium", "gpu"},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.MaxConcurrentJobs)
		assert.Equal(t, 10, updated.Priority)
		assert.Equal(t, []string{"chromium", "gpu"}, updated.Capabilities)
		assert.Equal(t, "patch-runner", updated.Name, "unset fields untouched")
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		zero := 0
		_, err := s.UpdateRunner(ctx, r.ID, UpdateRunnerInput{MaxConcurrentJobs: &zero})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		empty := ""
		_, err := s.UpdateRunner(ctx, r.ID, UpdateRunnerInput{Name: &empty})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown runner", func(t *testing.T) {
		_, err := s.UpdateRunner(ctx, 99999, UpdateRunnerInput{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSetRunnerStatus(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	r := mustCreateRunner(t, s, "lifecycle-runner", 1)

	paused, err := s.SetRunnerStatus(ctx, r.ID, runner.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusPaused, paused.Status)

	resumed, err := s.SetRunnerStatus(ctx, r.ID, runner.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusActive, resumed.Status)

	gone, err := s.SetRunnerStatus(ctx, r.ID, runner.StatusDecommissioned)
	require.NoError(t, err)
	assert.Equal(t, runner.StatusDecommissioned, gone.Status)

	// Decommissioned is terminal.
	_, err = s.SetRunnerStatus(ctx, r.ID, runner.StatusActive)
	require.ErrorIs(t, err, ErrConflict)

	_, err = s.SetRunnerStatus(ctx, 99999, runner.StatusPaused)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordHealthSample(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()

	r := mustCreateRunner(t, s, "probed-runner", 1)
	clk.Step(time.Minute)

	err := s.RecordHealthSample(ctx, r.ID, HealthSampleInput{
		Health:    runner.HealthHealthy,
		LatencyMs: 12,
	})
	require.NoError(t, err)

	stamped, err := s.GetRunner(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, stamped.LastHealthCheckAt)
	assert.Equal(t, testEpoch.Add(time.Minute), stamped.LastHealthCheckAt.UTC())

	// The health column is not flipped by samples alone.
	assert.Equal(t, runner.HealthUnknown, stamped.Health)

	flipped, err := s.SetRunnerHealth(ctx, r.ID, runner.HealthHealthy)
	require.NoError(t, err)
	assert.Equal(t, runner.HealthHealthy, flipped.Health)

	err = s.RecordHealthSample(ctx, 99999, HealthSampleInput{Health: runner.HealthHealthy})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListRunners(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	mustCreateRunner(t, s, "list-a", 1)
	b := mustCreateRunner(t, s, "list-b", 1)
	_, err := s.SetRunnerStatus(ctx, b.ID, runner.StatusPaused)
	require.NoError(t, err)

	all, err := s.ListRunners(ctx, models.RunnerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	paused, err := s.ListRunners(ctx, models.RunnerFilter{Status: "paused"})
	require.NoError(t, err)
	require.Len(t, paused, 1)
	assert.Equal(t, "list-b", paused[0].Name)

	active, err := s.ListActiveRunners(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "list-a", active[0].Name)

	_, err = s.ListRunners(ctx, models.RunnerFilter{Status: "hibernating"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestQueueStats(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()
	r := mustCreateRunner(t, s, "stats-runner", 10)

	mustCreateExecution(t, s, "smoke")
	clk.Step(time.Minute)
	mustCreateExecution(t, s, "smoke")

	assigned := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, assigned.ID, r.ID)

	running := mustCreateExecution(t, s, "smoke")
	mustAssign(t, s, running.ID, r.ID)
	_, err := s.ApplyRunning(ctx, running.ID, time.Time{})
	require.NoError(t, err)

	clk.Step(time.Minute)

	stats, err := s.QueueStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Queued)
	assert.Equal(t, 1, stats.Assigned)
	assert.Equal(t, 1, stats.Running)
	assert.Equal(t, (2 * time.Minute).Milliseconds(), stats.OldestQueuedAgeMs)
	assert.Equal(t, 1, stats.Runners.Active)
	assert.Equal(t, 10, stats.Runners.TotalCapacity)
	assert.InDelta(t, 0.2, stats.Runners.UtilizationRate, 1e-9)
	assert.Equal(t, map[int]int{r.ID: 2}, stats.InflightByRunner)
	assert.InDelta(t, 2*(1.0+512.0/1024), stats.LoadByRunner[r.ID], 1e-9)
}
