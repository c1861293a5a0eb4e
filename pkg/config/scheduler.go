package config

import (
	"fmt"
	"time"
)

// SchedulerConfig controls the assignment loop.
type SchedulerConfig struct {
	// Tick is the periodic scheduling interval. Edge triggers (new work,
	// freed capacity) wake the loop earlier.
	Tick time.Duration

	// Debounce coalesces bursts of wake events into a single pass.
	Debounce time.Duration

	// BatchSize is the maximum number of queued executions considered
	// per pass.
	BatchSize int

	// AssignRetries is how many times one execution is re-matched within
	// a pass after losing a capacity race.
	AssignRetries int
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Tick:          5 * time.Second,
		Debounce:      100 * time.Millisecond,
		BatchSize:     64,
		AssignRetries: 3,
	}
}

// SchedulerConfigFromEnv reads SCHED_* variables over the defaults.
func SchedulerConfigFromEnv() *SchedulerConfig {
	def := DefaultSchedulerConfig()
	return &SchedulerConfig{
		Tick:          envMillis("SCHED_TICK_MS", def.Tick),
		Debounce:      envMillis("SCHED_DEBOUNCE_MS", def.Debounce),
		BatchSize:     envInt("SCHED_BATCH", def.BatchSize),
		AssignRetries: envInt("SCHED_ASSIGN_RETRIES", def.AssignRetries),
	}
}

// Validate rejects values the loop cannot run with.
func (c *SchedulerConfig) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.Debounce < 0 || c.Debounce >= c.Tick {
		return fmt.Errorf("debounce must be in [0, tick), got %v", c.Debounce)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.AssignRetries < 0 {
		return fmt.Errorf("assign retries must be non-negative, got %d", c.AssignRetries)
	}
	return nil
}
