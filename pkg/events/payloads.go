package events

import (
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// BasePayload carries the fields every event payload shares.
type BasePayload struct {
	Type        string `json:"type"`
	ExecutionID string `json:"execution_id,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// ExecutionQueuedPayload is published when POST /executions accepts a request.
type ExecutionQueuedPayload struct {
	BasePayload
	TestSuite   string `json:"test_suite"`
	Environment string `json:"environment"`
	Priority    int    `json:"priority"`
	TotalShards int    `json:"total_shards"`
}

// ExecutionAssignedPayload is published after the assignment transaction
// commits.
type ExecutionAssignedPayload struct {
	BasePayload
	RunnerID   int    `json:"runner_id"`
	RunnerName string `json:"runner_name,omitempty"`
	RuleID     int    `json:"rule_id,omitempty"`
	RuleKind   string `json:"rule_kind,omitempty"`
}

// ExecutionStartedPayload is published on the runner's running webhook.
type ExecutionStartedPayload struct {
	BasePayload
	RunnerID int `json:"runner_id"`
}

// ShardCompletedPayload is published per recorded shard result.
type ShardCompletedPayload struct {
	BasePayload
	ShardIndex  int    `json:"shard_index"`
	TotalShards int    `json:"total_shards"`
	Status      string `json:"status"`
	Passed      int    `json:"passed"`
	Failed      int    `json:"failed"`
}

// ExecutionCompletedPayload is published on every terminal transition,
// whatever path led there (webhook, cancel, sweeper, driver failure).
type ExecutionCompletedPayload struct {
	BasePayload
	Status     execution.Status          `json:"status"`
	Reason     string                    `json:"reason,omitempty"`
	Aggregated *models.AggregatedResults `json:"aggregated_results,omitempty"`
}

// RunnerRegisteredPayload is published when a runner joins the fleet.
type RunnerRegisteredPayload struct {
	BasePayload
	RunnerID   int    `json:"runner_id"`
	RunnerName string `json:"runner_name"`
	RunnerType string `json:"runner_type"`
}

// RunnerHealthChangedPayload is published when the prober flips a runner's
// health.
type RunnerHealthChangedPayload struct {
	BasePayload
	RunnerID int           `json:"runner_id"`
	Health   runner.Health `json:"health"`
	Previous runner.Health `json:"previous"`
}

// RuleConfiguredPayload is published when a balancing rule is created or
// patched.
type RuleConfiguredPayload struct {
	BasePayload
	RuleID   int    `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Kind     string `json:"kind"`
	Active   bool   `json:"active"`
}

// QueueDepthPayload is a transient snapshot published at the end of each
// scheduler pass. Not persisted — the Store answers GET /queue/status.
type QueueDepthPayload struct {
	BasePayload
	Queued   int `json:"queued"`
	Assigned int `json:"assigned"`
	Running  int `json:"running"`
}

// LaggedPayload is synthesized by the bus for a subscriber whose inbox
// overflowed. Dropped is the number of events lost since the last marker.
type LaggedPayload struct {
	BasePayload
	Dropped int `json:"dropped"`
}
