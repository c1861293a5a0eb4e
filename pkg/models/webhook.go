package models

import "time"

// Runner webhook types. A runner reports progress with exactly these;
// anything else is a validation error.
const (
	WebhookTypeRunning       = "running"
	WebhookTypeShardComplete = "shard-complete"
	WebhookTypeFinal         = "final"
)

// RunnerWebhook is the body of POST /webhooks/runner. The shape is flat:
// counts, failed tests and artifact links ride at the top level next to the
// routing fields, and shard-complete deliveries name their shard in shard_id.
type RunnerWebhook struct {
	ExecutionID string         `json:"execution_id"`
	Type        string         `json:"type"`
	ShardID     *int           `json:"shard_id,omitempty"`     // shard-complete only
	TotalShards *int           `json:"total_shards,omitempty"` // optional cross-check
	Status      string         `json:"status,omitempty"`       // passed|failed|error|cancelled
	Results     *ResultCounts  `json:"results,omitempty"`
	FailedTests []FailedTest   `json:"failed_tests,omitempty"`
	Artifacts   *ArtifactRef   `json:"artifacts,omitempty"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ShardOutcome assembles the stored per-shard result from the webhook's flat
// fields. A runner that omits status gets it derived from the counts; the
// duration comes from the started_at/completed_at pair when both are present.
func (w RunnerWebhook) ShardOutcome() ShardResult {
	res := ShardResult{
		Status:      w.Status,
		FailedTests: w.FailedTests,
		Artifacts:   w.Artifacts,
	}
	if w.Results != nil {
		res.Total = w.Results.Total
		res.Passed = w.Results.Passed
		res.Failed = w.Results.Failed
		res.Skipped = w.Results.Skipped
	}
	if w.StartedAt != nil && w.CompletedAt != nil {
		if d := w.CompletedAt.Sub(*w.StartedAt); d > 0 {
			res.DurationMs = d.Milliseconds()
		}
	}
	if res.Status == "" {
		res.Status = ResultPassed
		if res.Failed > 0 {
			res.Status = ResultFailed
		}
	}
	return res
}

// ClientNotification is POSTed to the execution's webhook_url on every
// terminal transition. Delivery is best-effort with a small retry budget.
type ClientNotification struct {
	ExecutionID       string             `json:"execution_id"`
	Status            string             `json:"status"`
	Reason            string             `json:"reason,omitempty"`
	AggregatedResults *AggregatedResults `json:"aggregated_results,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	StartedAt         *time.Time         `json:"started_at,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
}
