package api

// CreateExecutionRequest is the HTTP request body for POST /executions.
// test_files and other free-form attributes travel in metadata.
type CreateExecutionRequest struct {
	TestSuite           string         `json:"test_suite"`
	Environment         string         `json:"environment"`
	Branch              string         `json:"branch,omitempty"`
	CommitSHA           string         `json:"commit,omitempty"`
	Priority            *int           `json:"priority,omitempty"`
	EstimatedDurationMs *int64         `json:"estimated_duration_ms,omitempty"`
	RequestedRunnerType *string        `json:"requested_runner_type,omitempty"`
	RequestedRunnerID   *int           `json:"requested_runner_id,omitempty"`
	TotalShards         int            `json:"total_shards,omitempty"`
	WebhookURL          string         `json:"webhook_url,omitempty"`
	Metadata            map[string]any `json:"metadata,omitempty"`
}

// RegisterRunnerRequest is the HTTP request body for POST /runners.
type RegisterRunnerRequest struct {
	Name              string         `json:"name"`
	Type              string         `json:"type"`
	EndpointURL       string         `json:"endpoint_url"`
	HealthCheckURL    string         `json:"health_check_url,omitempty"`
	Capabilities      []string       `json:"capabilities,omitempty"`
	MaxConcurrentJobs int            `json:"max_concurrent_jobs,omitempty"`
	Priority          int            `json:"priority,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// UpdateRunnerRequest is the partial patch body for PATCH /runners/:id.
type UpdateRunnerRequest struct {
	Name              *string        `json:"name,omitempty"`
	EndpointURL       *string        `json:"endpoint_url,omitempty"`
	HealthCheckURL    *string        `json:"health_check_url,omitempty"`
	Capabilities      []string       `json:"capabilities,omitempty"`
	MaxConcurrentJobs *int           `json:"max_concurrent_jobs,omitempty"`
	Priority          *int           `json:"priority,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// CreateRuleRequest is the HTTP request body for POST /rules.
// Kind uses the dashed wire form (e.g. "round-robin").
type CreateRuleRequest struct {
	Name                 string   `json:"name"`
	Kind                 string   `json:"kind"`
	Active               *bool    `json:"active,omitempty"`
	Priority             int      `json:"priority,omitempty"`
	TestSuitePattern     string   `json:"test_suite_pattern,omitempty"`
	EnvironmentPattern   string   `json:"environment_pattern,omitempty"`
	RequiredCapabilities []string `json:"required_capabilities,omitempty"`
	RunnerTypeFilter     string   `json:"runner_type_filter,omitempty"`
}

// UpdateRuleRequest is the partial patch body for PATCH /rules/:id.
type UpdateRuleRequest struct {
	Active             *bool   `json:"active,omitempty"`
	Priority           *int    `json:"priority,omitempty"`
	TestSuitePattern   *string `json:"test_suite_pattern,omitempty"`
	EnvironmentPattern *string `json:"environment_pattern,omitempty"`
}
