package config

const (
	defaultServerPort      = 8080
	defaultHistoryMaxDepth = 1000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"log.redact_fields": []string{},

		"history.max_depth": defaultHistoryMaxDepth,

		"health.check_timeout": "2s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "undoable",
	}
}
