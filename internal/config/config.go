// Package config manages environment variables.
//
// It reads variables from the `.env` file, an optional YAML file
// and the process environment, loads them into structured Go types
// and validates that required values are present so they can be
// reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Layer an optional YAML config file underneath the environment.
//   - Map everything into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any of the code below reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

/*
	`koanf` reads config sources (env, yaml, ...) into a flat key/value
	store, then unmarshals it into the structs below.

	Key idea in this file:
	- Env vars are read using a prefix: SWEETS_
	- Keys are normalized (lowercased, prefix removed)
	- Nested struct fields are mapped via "dot notation" using the "." delimiter
	  e.g. SWEETS_SERVER.PORT -> server.port -> Config.Server.Port
	- A YAML file named by SWEETS_CONFIG_FILE is loaded first, so env wins.
*/

const (
	// EnvPrefix is the prefix every environment variable must carry.
	EnvPrefix = "SWEETS_"

	// ConfigFileEnv names the env var holding an optional YAML config path.
	ConfigFileEnv = "SWEETS_CONFIG_FILE"

	// ServiceName labels logs, traces and metrics emitted by this service.
	ServiceName = "sweets"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`

	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `koanf:"auto_migrate"`
}

// LoadConfig loads configuration from the optional YAML file and from
// environment variables, validates it, applies defaults, and returns it.
//
// Behavior summary:
//   - Loads the YAML file named by SWEETS_CONFIG_FILE, if set
//   - Loads env vars with prefix SWEETS_ on top of it
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default observability if missing and forces service name + env
func LoadConfig() (*Config, error) {
	return load(os.Getenv(ConfigFileEnv))
}

// LoadConfigFrom is LoadConfig with an explicit YAML path; an empty path
// falls back to SWEETS_CONFIG_FILE.
func LoadConfigFrom(path string) (*Config, error) {
	if path == "" {
		return LoadConfig()
	}
	return load(path)
}

func load(path string) (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	// SWEETS_DATABASE.HOST -> "database.host"
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Start from defaults so a partially configured block (e.g. only
	// observability.logging.level) keeps the remaining default values.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	return finalize(mainConfig)
}

// finalize validates a decoded config and fills the optional blocks.
func finalize(mainConfig *Config) (*Config, error) {
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Server.ShutdownTimeout <= 0 {
		mainConfig.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Tracing/logging must see consistent service naming regardless of input.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// DefaultShutdownTimeout is used when server.shutdown_timeout is unset (seconds).
const DefaultShutdownTimeout = 30
