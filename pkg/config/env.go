package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// knownKeys is the full set of environment variables the config layer reads.
// Anything else under the same prefixes is almost certainly a typo.
var knownKeys = map[string]struct{}{
	"SCHED_TICK_MS":                 {},
	"SCHED_BATCH":                   {},
	"SCHED_ASSIGN_RETRIES":          {},
	"SCHED_DEBOUNCE_MS":             {},
	"HEALTH_TICK_MS":                {},
	"HEALTH_PROBE_TIMEOUT_MS":       {},
	"HEALTH_PROBE_CONCURRENCY":      {},
	"HEALTH_FLAP_SAMPLES":           {},
	"HEALTH_SAMPLE_RETENTION_HOURS": {},
	"EXEC_MAX_MS":                   {},
	"SWEEP_TICK_MS":                 {},
	"DRIVER_START_RETRIES":          {},
	"DRIVER_START_BACKOFF_MS":       {},
	"DRIVER_START_MAX_ELAPSED_MS":   {},
	"DRIVER_CALLBACK_BASE_URL":      {},
	"CLIENT_WEBHOOK_RETRIES":        {},
	"CLIENT_WEBHOOK_BACKOFF_MS":     {},
	"EVENT_BUS_QUEUE_LIMIT":         {},
	"AUDIT_EVENT_RETENTION_HOURS":   {},
	"RETENTION_TICK_MS":             {},
}

var knownPrefixes = []string{
	"SCHED_", "HEALTH_", "EXEC_", "SWEEP_", "DRIVER_",
	"CLIENT_WEBHOOK_", "EVENT_BUS_", "AUDIT_EVENT_", "RETENTION_",
}

func envString(key, def string) string {
	if raw := os.Getenv(key); raw != "" {
		return raw
	}
	return def
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid integer env value, using default",
			"key", key, "value", raw, "default", def)
		return def
	}
	return v
}

// envMillis reads a millisecond-denominated variable into a Duration.
func envMillis(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid duration env value, using default",
			"key", key, "value", raw, "default", def)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// envHours reads an hour-denominated variable into a Duration.
func envHours(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	h, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid duration env value, using default",
			"key", key, "value", raw, "default", def)
		return def
	}
	return time.Duration(h) * time.Hour
}

// warnUnknownKeys logs variables that look like baton config but aren't.
func warnUnknownKeys() {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := knownKeys[name]; ok {
			continue
		}
		for _, p := range knownPrefixes {
			if strings.HasPrefix(name, p) {
				slog.Warn("Unknown configuration key ignored", "key", name)
				break
			}
		}
	}
}
