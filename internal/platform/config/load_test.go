package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/undoable/internal/platform/config"
)

// Load tests chdir to the module root to read configs/, so they cannot run
// in parallel.

func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, 100, cfg.History.MaxDepth)
				assert.False(t, cfg.Telemetry.Enabled)
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, 1000, cfg.History.MaxDepth)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
				assert.Equal(t, "http://otel-collector:4318", cfg.Telemetry.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir("../../..")

			cfg, err := config.Load(tt.profile)
			require.NoError(t, err)

			// Shared keys come from base.yaml.
			assert.Equal(t, "0.0.0.0", cfg.Server.Host)
			assert.Equal(t, 8080, cfg.Server.Port)
			assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
			assert.Equal(t, 2*time.Second, cfg.Health.CheckTimeout)
			assert.Empty(t, cfg.Log.RedactFields)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"APP_SERVER_PORT", "9090", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 9090, cfg.Server.Port)
		}},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		}},
		{"APP_HISTORY_MAX_DEPTH", "7", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 7, cfg.History.MaxDepth)
		}},
		{"APP_HEALTH_CHECK_TIMEOUT", "500ms", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 500*time.Millisecond, cfg.Health.CheckTimeout)
		}},
		{"APP_LOG_REDACT_FIELDS", "pin,ssn", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, []string{"pin", "ssn"}, cfg.Log.RedactFields)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "{}\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.History.MaxDepth)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_InvalidProfileYAMLFailsValidation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "history:\n  max_depth: -3\n")

	_, err := config.Load("broken", config.WithConfigDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.max_depth")
}

func TestLoad_RejectsBadProfiles(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`, "nonexistent"} {
		_, err := config.Load(profile, config.WithConfigDir(t.TempDir()))
		assert.Error(t, err, "Load(%q)", profile)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
