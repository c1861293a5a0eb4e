package config

import (
	"fmt"
	"time"
)

// NotifyConfig controls client webhook delivery on terminal transitions.
type NotifyConfig struct {
	// Retries is the total number of delivery attempts.
	Retries int

	// Backoff is the initial delay between attempts.
	Backoff time.Duration
}

// DefaultNotifyConfig returns the built-in notification defaults.
func DefaultNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		Retries: 3,
		Backoff: 2 * time.Second,
	}
}

// NotifyConfigFromEnv reads CLIENT_WEBHOOK_* variables over the defaults.
func NotifyConfigFromEnv() *NotifyConfig {
	def := DefaultNotifyConfig()
	return &NotifyConfig{
		Retries: envInt("CLIENT_WEBHOOK_RETRIES", def.Retries),
		Backoff: envMillis("CLIENT_WEBHOOK_BACKOFF_MS", def.Backoff),
	}
}

// Validate rejects values the notifier cannot run with.
func (c *NotifyConfig) Validate() error {
	if c.Retries <= 0 {
		return fmt.Errorf("retries must be positive, got %d", c.Retries)
	}
	if c.Backoff <= 0 {
		return fmt.Errorf("backoff must be positive, got %v", c.Backoff)
	}
	return nil
}
