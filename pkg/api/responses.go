package api

import (
	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/pkg/database"
)

// CreateExecutionResponse is returned by POST /executions.
type CreateExecutionResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
}

// CancelExecutionResponse is returned by POST /executions/:id/cancel.
type CancelExecutionResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
}

// ExecutionListResponse is the paged envelope for GET /executions.
type ExecutionListResponse struct {
	Executions []*ent.Execution `json:"executions"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// RegisterRunnerResponse is returned by POST /runners. The webhook
// token is only ever disclosed here; the runner entity keeps it sensitive.
type RegisterRunnerResponse struct {
	RunnerID     int    `json:"runner_id"`
	Name         string `json:"name"`
	WebhookToken string `json:"webhook_token"`
}

// RunnerWithInflight decorates a runner row with its live job count.
type RunnerWithInflight struct {
	*ent.Runner
	Inflight int `json:"inflight"`
}

// RunnerListResponse is returned by GET /runners.
type RunnerListResponse struct {
	Runners []RunnerWithInflight `json:"runners"`
}

// RuleResponse decorates a rule row with its dashed wire-form kind.
type RuleResponse struct {
	*ent.BalancingRule
	Kind string `json:"kind"`
}

// RuleListResponse is returned by GET /rules.
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// WebhookAck is returned by POST /webhooks/runner.
type WebhookAck struct {
	ExecutionID string `json:"execution_id"`
	Outcome     string `json:"outcome"`
	Status      string `json:"status"`
}

// HealthCheck is one component's health verdict inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks"`
}
