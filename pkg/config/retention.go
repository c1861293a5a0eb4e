package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls rotation of health samples and audit events.
type RetentionConfig struct {
	// HealthSampleTTL is the maximum age of health sample rows.
	HealthSampleTTL time.Duration

	// AuditEventTTL is the maximum age of audit event rows. Old enough
	// that WebSocket catch-up never reaches back this far.
	AuditEventTTL time.Duration

	// Interval is how often the retention loop runs.
	Interval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		HealthSampleTTL: 7 * 24 * time.Hour,
		AuditEventTTL:   30 * 24 * time.Hour,
		Interval:        1 * time.Hour,
	}
}

// RetentionConfigFromEnv reads retention variables over the defaults.
func RetentionConfigFromEnv() *RetentionConfig {
	def := DefaultRetentionConfig()
	return &RetentionConfig{
		HealthSampleTTL: envHours("HEALTH_SAMPLE_RETENTION_HOURS", def.HealthSampleTTL),
		AuditEventTTL:   envHours("AUDIT_EVENT_RETENTION_HOURS", def.AuditEventTTL),
		Interval:        envMillis("RETENTION_TICK_MS", def.Interval),
	}
}

// Validate rejects values the retention loop cannot run with.
func (c *RetentionConfig) Validate() error {
	if c.HealthSampleTTL <= 0 {
		return fmt.Errorf("health sample TTL must be positive, got %v", c.HealthSampleTTL)
	}
	if c.AuditEventTTL <= 0 {
		return fmt.Errorf("audit event TTL must be positive, got %v", c.AuditEventTTL)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	return nil
}
