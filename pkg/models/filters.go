package models

// ExecutionFilter narrows GET /executions listings. Zero values mean
// "no constraint".
type ExecutionFilter struct {
	Status      string
	TestSuite   string
	Environment string
	RunnerID    int
	Page        int
	PageSize    int
}

// RunnerFilter narrows GET /runners listings.
type RunnerFilter struct {
	Type   string
	Status string
	Health string
}

// QueueStats is the snapshot behind GET /queue/status and the
// queue.depth event.
type QueueStats struct {
	Queued            int             `json:"queued"`
	Assigned          int             `json:"assigned"`
	Running           int             `json:"running"`
	OldestQueuedAgeMs int64           `json:"oldest_queued_age_ms"`
	Runners           RunnerPoolStats `json:"runners"`
	InflightByRunner  map[int]int     `json:"inflight_by_runner,omitempty"`
	LoadByRunner      map[int]float64 `json:"load_by_runner,omitempty"`
}

// RunnerPoolStats summarizes fleet capacity. UtilizationRate is occupied
// slots (assigned + running) over total capacity; zero capacity reads as 0.
type RunnerPoolStats struct {
	Active          int     `json:"active"`
	TotalCapacity   int     `json:"total_capacity"`
	UtilizationRate float64 `json:"utilization_rate"`
}
