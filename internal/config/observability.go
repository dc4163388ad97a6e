package config

import (
	"fmt"
	"strings"
	"time"
)

// ObservabilityConfig groups everything related to telemetry:
//   - logging (level, format, slow query threshold)
//   - New Relic APM/tracing
//   - the /status health endpoint
//   - the Prometheus endpoint
//
// It hangs off Config.Observability. Missing keys keep the values from
// DefaultObservabilityConfig.
type ObservabilityConfig struct {
	// ServiceName is forced to "sweets" at load time.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment mirrors primary.env (production, development, local, ...).
	Environment string `koanf:"environment" validate:"required"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
	Metrics      MetricsConfig      `koanf:"metrics"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"required"`

	// Format is "json" or "console". JSON is only honored in production;
	// every other environment logs through the console writer.
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold flags SQL statements slower than this duration.
	// Supply parseable duration strings such as "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
type NewRelicConfig struct {
	// LicenseKey is the ingest key. Empty disables the agent entirely.
	LicenseKey string `koanf:"license_key"`

	AppLogForwardingEnabled   bool `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging makes the agent write its own debug output to stdout.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks behind /status.
type HealthChecksConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`

	// Checks names the dependencies to ping. Only "database" is known.
	Checks []string `koanf:"checks"`
}

// MetricsConfig toggles Prometheus instrumentation and sets where it is served.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// DefaultObservabilityConfig returns defaults suitable for local development
// that do not break production: info level, JSON logs, New Relic off until a
// license key shows up, database health check on.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			// Off so agent output doesn't interleave with JSON logs.
			DebugLogging: false,
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"database"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate applies rules that struct tags cannot express: enums and
// cross-field constraints. It returns the first violation found.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Enabled && c.HealthChecks.Timeout <= 0 {
		return fmt.Errorf("health_checks timeout must be positive when enabled")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/': %q", c.Metrics.Path)
	}

	return nil
}

// GetLogLevel returns the effective log level: production falls back to
// "info" and development to "debug" when no level is configured.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	switch c.Environment {
	case "production":
		return "info"
	case "development", "local":
		return "debug"
	}
	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HasCheck reports whether the named health check is enabled.
func (c *ObservabilityConfig) HasCheck(name string) bool {
	if !c.HealthChecks.Enabled {
		return false
	}
	for _, check := range c.HealthChecks.Checks {
		if check == name {
			return true
		}
	}
	return false
}
