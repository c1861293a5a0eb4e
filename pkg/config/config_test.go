package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	sched := DefaultSchedulerConfig()
	assert.Equal(t, 5*time.Second, sched.Tick)
	assert.Equal(t, 100*time.Millisecond, sched.Debounce)
	assert.Equal(t, 64, sched.BatchSize)
	assert.Equal(t, 3, sched.AssignRetries)

	health := DefaultHealthConfig()
	assert.Equal(t, 30*time.Second, health.Tick)
	assert.Equal(t, 5*time.Second, health.ProbeTimeout)
	assert.Equal(t, 8, health.ProbeConcurrency)
	assert.Equal(t, 1, health.FlapSamples)

	ingest := DefaultIngestConfig()
	assert.Equal(t, 30*time.Minute, ingest.ExecutionTimeout)
	assert.Equal(t, 30*time.Second, ingest.SweepInterval)

	driver := DefaultDriverConfig()
	assert.Equal(t, 5, driver.StartRetries)
	assert.Equal(t, 1*time.Second, driver.StartBackoff)
	assert.Equal(t, 60*time.Second, driver.StartMaxElapsed)

	notify := DefaultNotifyConfig()
	assert.Equal(t, 3, notify.Retries)
	assert.Equal(t, 2*time.Second, notify.Backoff)

	events := DefaultEventsConfig()
	assert.Equal(t, 256, events.QueueLimit)

	retention := DefaultRetentionConfig()
	assert.Equal(t, 7*24*time.Hour, retention.HealthSampleTTL)
	assert.Equal(t, 30*24*time.Hour, retention.AuditEventTTL)
	assert.Equal(t, 1*time.Hour, retention.Interval)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCHED_TICK_MS", "2000")
	t.Setenv("SCHED_BATCH", "10")
	t.Setenv("HEALTH_PROBE_TIMEOUT_MS", "1500")
	t.Setenv("EXEC_MAX_MS", "600000")
	t.Setenv("DRIVER_START_RETRIES", "2")
	t.Setenv("EVENT_BUS_QUEUE_LIMIT", "32")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Scheduler.Tick)
	assert.Equal(t, 10, cfg.Scheduler.BatchSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.Health.ProbeTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Ingest.ExecutionTimeout)
	assert.Equal(t, 2, cfg.Driver.StartRetries)
	assert.Equal(t, 32, cfg.Events.QueueLimit)

	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.Notify.Retries)
}

func TestLoadInvalidValueFallsBackToDefault(t *testing.T) {
	t.Setenv("SCHED_TICK_MS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.Tick)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "zero scheduler tick",
			mutate: func(c *Config) { c.Scheduler.Tick = 0 },
			errMsg: "tick must be positive",
		},
		{
			name:   "debounce at or above tick",
			mutate: func(c *Config) { c.Scheduler.Debounce = c.Scheduler.Tick },
			errMsg: "debounce must be in [0, tick)",
		},
		{
			name:   "probe timeout above tick",
			mutate: func(c *Config) { c.Health.ProbeTimeout = c.Health.Tick + time.Second },
			errMsg: "probe timeout must be in (0, tick]",
		},
		{
			name:   "sweep interval above execution timeout",
			mutate: func(c *Config) { c.Ingest.SweepInterval = c.Ingest.ExecutionTimeout + time.Second },
			errMsg: "sweep interval must be in (0, execution timeout]",
		},
		{
			name:   "zero driver retries",
			mutate: func(c *Config) { c.Driver.StartRetries = 0 },
			errMsg: "start retries must be positive",
		},
		{
			name:   "max elapsed below backoff",
			mutate: func(c *Config) { c.Driver.StartMaxElapsed = c.Driver.StartBackoff / 2 },
			errMsg: "start max elapsed must be at least the backoff",
		},
		{
			name:   "zero event queue limit",
			mutate: func(c *Config) { c.Events.QueueLimit = 0 },
			errMsg: "queue limit must be positive",
		},
		{
			name:   "zero retention interval",
			mutate: func(c *Config) { c.Retention.Interval = 0 },
			errMsg: "interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Scheduler: DefaultSchedulerConfig(),
				Health:    DefaultHealthConfig(),
				Ingest:    DefaultIngestConfig(),
				Driver:    DefaultDriverConfig(),
				Notify:    DefaultNotifyConfig(),
				Events:    DefaultEventsConfig(),
				Retention: DefaultRetentionConfig(),
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}
