package config

import (
	"fmt"
	"time"
)

// DriverConfig controls start dispatch through runner drivers.
type DriverConfig struct {
	// StartRetries is the total number of Start attempts per execution.
	StartRetries int

	// StartBackoff is the initial delay between attempts; backoff is
	// exponential from here.
	StartBackoff time.Duration

	// StartMaxElapsed caps the whole retry budget. Exhausting it
	// finalizes the execution as error and releases the runner slot.
	StartMaxElapsed time.Duration

	// CallbackBaseURL is the externally reachable base of this server,
	// handed to runners so they can reach POST /webhooks/runner.
	CallbackBaseURL string
}

// DefaultDriverConfig returns the built-in driver defaults.
func DefaultDriverConfig() *DriverConfig {
	return &DriverConfig{
		StartRetries:    5,
		StartBackoff:    1 * time.Second,
		StartMaxElapsed: 60 * time.Second,
		CallbackBaseURL: "http://localhost:8080",
	}
}

// DriverConfigFromEnv reads DRIVER_START_* variables over the defaults.
func DriverConfigFromEnv() *DriverConfig {
	def := DefaultDriverConfig()
	return &DriverConfig{
		StartRetries:    envInt("DRIVER_START_RETRIES", def.StartRetries),
		StartBackoff:    envMillis("DRIVER_START_BACKOFF_MS", def.StartBackoff),
		StartMaxElapsed: envMillis("DRIVER_START_MAX_ELAPSED_MS", def.StartMaxElapsed),
		CallbackBaseURL: envString("DRIVER_CALLBACK_BASE_URL", def.CallbackBaseURL),
	}
}

// Validate rejects values the gateway cannot run with.
func (c *DriverConfig) Validate() error {
	if c.StartRetries <= 0 {
		return fmt.Errorf("start retries must be positive, got %d", c.StartRetries)
	}
	if c.StartBackoff <= 0 {
		return fmt.Errorf("start backoff must be positive, got %v", c.StartBackoff)
	}
	if c.StartMaxElapsed < c.StartBackoff {
		return fmt.Errorf("start max elapsed must be at least the backoff, got %v", c.StartMaxElapsed)
	}
	if c.CallbackBaseURL == "" {
		return fmt.Errorf("callback base URL must not be empty")
	}
	return nil
}
