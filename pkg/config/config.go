// Package config contains baton's runtime configuration, loaded from
// environment variables with built-in defaults. Every knob is enumerated
// here; unrecognized variables under the known prefixes are logged and
// ignored so typos surface in the logs instead of silently doing nothing.
package config

import (
	"fmt"
)

// Config aggregates all component configuration.
type Config struct {
	Scheduler *SchedulerConfig
	Health    *HealthConfig
	Ingest    *IngestConfig
	Driver    *DriverConfig
	Notify    *NotifyConfig
	Events    *EventsConfig
	Retention *RetentionConfig
}

// Load builds the full configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Scheduler: SchedulerConfigFromEnv(),
		Health:    HealthConfigFromEnv(),
		Ingest:    IngestConfigFromEnv(),
		Driver:    DriverConfigFromEnv(),
		Notify:    NotifyConfigFromEnv(),
		Events:    EventsConfigFromEnv(),
		Retention: RetentionConfigFromEnv(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	warnUnknownKeys()
	return cfg, nil
}

// Validate checks every section; the process refuses to start on nonsense.
func (c *Config) Validate() error {
	validators := []struct {
		name string
		err  error
	}{
		{"scheduler", c.Scheduler.Validate()},
		{"health", c.Health.Validate()},
		{"ingest", c.Ingest.Validate()},
		{"driver", c.Driver.Validate()},
		{"notify", c.Notify.Validate()},
		{"events", c.Events.Validate()},
		{"retention", c.Retention.Validate()},
	}
	for _, v := range validators {
		if v.err != nil {
			return fmt.Errorf("%s config: %w", v.name, v.err)
		}
	}
	return nil
}
