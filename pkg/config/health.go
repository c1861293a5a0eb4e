package config

import (
	"fmt"
	"time"
)

// HealthConfig controls the runner health prober.
type HealthConfig struct {
	// Tick is the probe round interval.
	Tick time.Duration

	// ProbeTimeout bounds each individual HTTP probe.
	ProbeTimeout time.Duration

	// ProbeConcurrency caps in-flight probes per round.
	ProbeConcurrency int

	// FlapSamples is how many consecutive identical outcomes are needed
	// before a runner's health flips. 1 applies every sample immediately.
	FlapSamples int
}

// DefaultHealthConfig returns the built-in prober defaults.
func DefaultHealthConfig() *HealthConfig {
	return &HealthConfig{
		Tick:             30 * time.Second,
		ProbeTimeout:     5 * time.Second,
		ProbeConcurrency: 8,
		FlapSamples:      1,
	}
}

// HealthConfigFromEnv reads HEALTH_* variables over the defaults.
func HealthConfigFromEnv() *HealthConfig {
	def := DefaultHealthConfig()
	return &HealthConfig{
		Tick:             envMillis("HEALTH_TICK_MS", def.Tick),
		ProbeTimeout:     envMillis("HEALTH_PROBE_TIMEOUT_MS", def.ProbeTimeout),
		ProbeConcurrency: envInt("HEALTH_PROBE_CONCURRENCY", def.ProbeConcurrency),
		FlapSamples:      envInt("HEALTH_FLAP_SAMPLES", def.FlapSamples),
	}
}

// Validate rejects values the prober cannot run with.
func (c *HealthConfig) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.ProbeTimeout <= 0 || c.ProbeTimeout > c.Tick {
		return fmt.Errorf("probe timeout must be in (0, tick], got %v", c.ProbeTimeout)
	}
	if c.ProbeConcurrency <= 0 {
		return fmt.Errorf("probe concurrency must be positive, got %d", c.ProbeConcurrency)
	}
	if c.FlapSamples <= 0 {
		return fmt.Errorf("flap samples must be positive, got %d", c.FlapSamples)
	}
	return nil
}
