package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
)

func TestAggregateSumsAcrossShards(t *testing.T) {
	shards := map[string]models.ShardResult{
		"1": {Status: models.ResultPassed, Total: 93, Passed: 93, DurationMs: 120_000},
		"2": {
			Status: models.ResultFailed, Total: 7, Passed: 4, Failed: 2, Skipped: 1,
			DurationMs: 30_000,
			FailedTests: []models.FailedTest{
				{Title: "checkout retries", File: "checkout_test.ts"},
				{Title: "payment declined", File: "payment_test.ts"},
			},
		},
	}

	agg := Aggregate(shards, 2)

	assert.Equal(t, models.ResultFailed, agg.Status)
	assert.Equal(t, 100, agg.Total)
	assert.Equal(t, 97, agg.Passed)
	assert.Equal(t, 2, agg.Failed)
	assert.Equal(t, 1, agg.Skipped)
	assert.Equal(t, int64(150_000), agg.DurationMs)
	assert.Equal(t, 2, agg.Shards)
	assert.Len(t, agg.FailedTests, 2)
	assert.Equal(t, "checkout retries", agg.FailedTests[0].Title)
}

func TestAggregateAllPassed(t *testing.T) {
	shards := map[string]models.ShardResult{
		"1": {Status: models.ResultPassed, Total: 10, Passed: 10},
	}
	agg := Aggregate(shards, 1)
	assert.Equal(t, models.ResultPassed, agg.Status)
	assert.Equal(t, 10, agg.Total)
}

func TestAggregateFailedCountOverridesPassedStatus(t *testing.T) {
	shards := map[string]models.ShardResult{
		"1": {Status: models.ResultPassed, Total: 10, Passed: 9, Failed: 1},
		"2": {Status: models.ResultPassed, Total: 10, Passed: 10},
	}
	agg := Aggregate(shards, 2)
	assert.Equal(t, models.ResultFailed, agg.Status)
	assert.Equal(t, 1, agg.Failed)
}

func TestAggregateErrorOutranksFailed(t *testing.T) {
	shards := map[string]models.ShardResult{
		"1": {Status: models.ResultFailed, Total: 5, Failed: 1},
		"2": {Status: models.ResultError, Total: 0},
		"3": {Status: models.ResultPassed, Total: 5, Passed: 5},
	}
	agg := Aggregate(shards, 3)
	assert.Equal(t, models.ResultError, agg.Status)
}

func TestAggregateMissingShardIsError(t *testing.T) {
	shards := map[string]models.ShardResult{
		"1": {Status: models.ResultPassed, Total: 5, Passed: 5},
		"3": {Status: models.ResultPassed, Total: 5, Passed: 5},
	}
	agg := Aggregate(shards, 3)
	assert.Equal(t, models.ResultError, agg.Status)
	// Reported shards still count toward the totals.
	assert.Equal(t, 10, agg.Total)
}

func TestExecutionStatusMapping(t *testing.T) {
	assert.Equal(t, execution.StatusCompleted, ExecutionStatus(models.ResultPassed))
	assert.Equal(t, execution.StatusFailed, ExecutionStatus(models.ResultFailed))
	assert.Equal(t, execution.StatusError, ExecutionStatus(models.ResultError))
	assert.Equal(t, execution.StatusCancelled, ExecutionStatus(models.ResultCancelled))
	assert.Equal(t, execution.StatusError, ExecutionStatus("exploded"))
}
