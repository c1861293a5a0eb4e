package ingest

import (
	"strconv"

	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
)

// Aggregate rolls shard results up into one summary. Shard indices are
// 1-based; a missing index makes the overall status error, and an errored
// shard outranks a failed one. Totals and durations are sums over the shards
// that reported; failed tests are concatenated in shard order. Passed is only
// reported when the summed failure count is zero.
func Aggregate(shards map[string]models.ShardResult, totalShards int) *models.AggregatedResults {
	agg := &models.AggregatedResults{
		Status: models.ResultPassed,
		Shards: totalShards,
	}

	missing := false
	for i := 1; i <= totalShards; i++ {
		shard, ok := shards[strconv.Itoa(i)]
		if !ok {
			missing = true
			continue
		}

		agg.Total += shard.Total
		agg.Passed += shard.Passed
		agg.Failed += shard.Failed
		agg.Skipped += shard.Skipped
		agg.DurationMs += shard.DurationMs
		agg.FailedTests = append(agg.FailedTests, shard.FailedTests...)

		switch shard.Status {
		case models.ResultError:
			agg.Status = models.ResultError
		case models.ResultCancelled:
			if agg.Status != models.ResultError {
				agg.Status = models.ResultCancelled
			}
		case models.ResultFailed:
			if agg.Status == models.ResultPassed {
				agg.Status = models.ResultFailed
			}
		}
	}

	// A shard can claim passed while counting failures; the tallies win.
	if agg.Failed > 0 && agg.Status == models.ResultPassed {
		agg.Status = models.ResultFailed
	}
	if missing {
		agg.Status = models.ResultError
	}
	return agg
}

// ExecutionStatus maps a runner-reported result status onto the execution
// lifecycle. Unknown strings map to error.
func ExecutionStatus(result string) execution.Status {
	switch result {
	case models.ResultPassed:
		return execution.StatusCompleted
	case models.ResultFailed:
		return execution.StatusFailed
	case models.ResultCancelled:
		return execution.StatusCancelled
	default:
		return execution.StatusError
	}
}
