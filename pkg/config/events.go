package config

import "fmt"

// EventsConfig controls the in-process event bus.
type EventsConfig struct {
	// QueueLimit is the per-subscriber inbox capacity. Overflow drops the
	// oldest buffered event and surfaces a lagged marker to the subscriber.
	QueueLimit int
}

// DefaultEventsConfig returns the built-in event bus defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		QueueLimit: 256,
	}
}

// EventsConfigFromEnv reads EVENT_BUS_* variables over the defaults.
func EventsConfigFromEnv() *EventsConfig {
	def := DefaultEventsConfig()
	return &EventsConfig{
		QueueLimit: envInt("EVENT_BUS_QUEUE_LIMIT", def.QueueLimit),
	}
}

// Validate rejects values the bus cannot run with.
func (c *EventsConfig) Validate() error {
	if c.QueueLimit <= 0 {
		return fmt.Errorf("queue limit must be positive, got %d", c.QueueLimit)
	}
	return nil
}
