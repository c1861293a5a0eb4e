package config

import (
	"fmt"
	"time"
)

// IngestConfig controls webhook ingest and the completion sweeper.
type IngestConfig struct {
	// ExecutionTimeout is the hard ceiling on a single execution. The
	// sweeper finalizes anything older as error — a runner that died
	// without a final webhook must not hold its slot forever.
	ExecutionTimeout time.Duration

	// SweepInterval is how often the sweeper scans for overdue executions.
	SweepInterval time.Duration
}

// DefaultIngestConfig returns the built-in ingest defaults.
func DefaultIngestConfig() *IngestConfig {
	return &IngestConfig{
		ExecutionTimeout: 30 * time.Minute,
		SweepInterval:    30 * time.Second,
	}
}

// IngestConfigFromEnv reads EXEC_MAX_MS and SWEEP_TICK_MS over the defaults.
func IngestConfigFromEnv() *IngestConfig {
	def := DefaultIngestConfig()
	return &IngestConfig{
		ExecutionTimeout: envMillis("EXEC_MAX_MS", def.ExecutionTimeout),
		SweepInterval:    envMillis("SWEEP_TICK_MS", def.SweepInterval),
	}
}

// Validate rejects values the sweeper cannot run with.
func (c *IngestConfig) Validate() error {
	if c.ExecutionTimeout <= 0 {
		return fmt.Errorf("execution timeout must be positive, got %v", c.ExecutionTimeout)
	}
	if c.SweepInterval <= 0 || c.SweepInterval > c.ExecutionTimeout {
		return fmt.Errorf("sweep interval must be in (0, execution timeout], got %v", c.SweepInterval)
	}
	return nil
}
