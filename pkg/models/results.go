// Package models contains business domain types shared across layers.
// Kept free of ent imports: ent/schema references these types for JSON
// columns, so anything here must not depend on generated code.
package models

// Result statuses reported by runners per shard and mapped onto the
// execution lifecycle at finalization (passed -> completed).
const (
	ResultPassed    = "passed"
	ResultFailed    = "failed"
	ResultError     = "error"
	ResultCancelled = "cancelled"
)

// ResultCounts are the raw test tallies a runner reports.
type ResultCounts struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ShardResult is one shard's outcome as reported by the runner.
type ShardResult struct {
	Status      string       `json:"status"`
	Total       int          `json:"total"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	Skipped     int          `json:"skipped"`
	DurationMs  int64        `json:"duration_ms,omitempty"`
	FailedTests []FailedTest `json:"failed_tests,omitempty"`
	Artifacts   *ArtifactRef `json:"artifacts,omitempty"`
}

// FailedTest identifies a single failing test within a shard.
type FailedTest struct {
	Title      string `json:"title"`
	File       string `json:"file,omitempty"`
	Error      string `json:"error,omitempty"`
	Retries    int    `json:"retries,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}

// ArtifactRef carries links to externally stored run artifacts.
// Baton stores references only, never the artifacts themselves.
type ArtifactRef struct {
	ReportURL      string `json:"report_url,omitempty"`
	LogsURL        string `json:"logs_url,omitempty"`
	ScreenshotsURL string `json:"screenshots_url,omitempty"`
}

// AggregatedResults is the roll-up across all shards, computed once at
// finalization for completed/failed outcomes. Totals are sums over shards.
type AggregatedResults struct {
	Status      string       `json:"status"`
	Total       int          `json:"total"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	Skipped     int          `json:"skipped"`
	DurationMs  int64        `json:"duration_ms,omitempty"`
	Shards      int          `json:"shards"`
	FailedTests []FailedTest `json:"failed_tests,omitempty"`
}
