package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/undoable/internal/platform/config"
)

// validConfig returns a Config with every field set to a valid value.
func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:       config.LogConfig{Level: "info", Format: "json"},
		History:   config.HistoryConfig{MaxDepth: 1000},
		Health:    config.HealthConfig{CheckTimeout: 2 * time.Second},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"unbounded history", func(c *config.Config) { c.History.MaxDepth = 0 }, ""},
		{"telemetry off ignores exporter", func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }, ""},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *config.Config) { c.Server.Port = 70000 }, "server.port"},
		{"read timeout", func(c *config.Config) { c.Server.ReadTimeout = 0 }, "server.read_timeout"},
		{"write timeout", func(c *config.Config) { c.Server.WriteTimeout = 0 }, "server.write_timeout"},
		{"shutdown timeout", func(c *config.Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdown_timeout"},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"negative history depth", func(c *config.Config) { c.History.MaxDepth = -1 }, "history.max_depth"},
		{"negative check timeout", func(c *config.Config) { c.Health.CheckTimeout = -time.Second }, "health.check_timeout"},
		{"unsupported exporter", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "zipkin"
		}, "telemetry.exporter"},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, "telemetry.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Log.Format = "xml"
	cfg.History.MaxDepth = -1

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.port", "log.format", "history.max_depth"} {
		assert.Contains(t, err.Error(), key)
	}
}
