// Package config provides configuration loading and validation for the service.
// Configuration is loaded with a layered system, highest precedence last:
// built-in defaults -> base.yaml -> {profile}.yaml -> APP_ env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	History   HistoryConfig   `koanf:"history"`
	Health    HealthConfig    `koanf:"health"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// RedactFields names extra log attributes to mask.
	RedactFields []string `koanf:"redact_fields"`
}

// HistoryConfig holds undo history settings.
type HistoryConfig struct {
	// MaxDepth caps the number of undoable transactions kept; the oldest are
	// evicted first. Zero means unbounded.
	MaxDepth int `koanf:"max_depth"`
}

// HealthConfig holds readiness check settings.
type HealthConfig struct {
	CheckTimeout time.Duration `koanf:"check_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
