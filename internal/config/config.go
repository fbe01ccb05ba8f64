// Package config manages environment variables.
//
// It reads variable from the `.env` file and an optional YAML file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused accross the application runtime.
//
// Responsibilities:
//   - Load defaults, then an optional config file, then environment variables.
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// *before* your code reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

/*
	Key idea in this file:
	- Defaults come from DefaultConfig() through koanf's structs provider.
	- An optional YAML file (CONFIG_PATH or ./config.yaml) is layered on top.
	- Env vars are read using a prefix: STARWARS_
	- Keys are normalized (lowercased, prefix removed) and a double underscore
	  marks nesting, e.g. STARWARS_SERVER__PORT -> server.port -> Config.Server.Port
	- DATABASE_URL and PORT are honoured without prefix, the way most
	  hosting platforms hand them out.
*/

const (
	// EnvPrefix is the prefix every application env var carries.
	EnvPrefix = "STARWARS_"

	// ConfigPathEnvVar overrides the config file location.
	ConfigPathEnvVar = "CONFIG_PATH"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are used by go-playground/validator
// to enforce that the config is present and populated.
//
// Observability is a pointer because it is optional. If not provided,
// we inject defaults at runtime.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Usually used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig selects and tunes the storage backend.
//
// URL is the connection string. A postgres:// or postgresql:// URL selects
// PostgreSQL; an empty URL or duckdb://<path> selects the local DuckDB file.
type DatabaseConfig struct {
	URL             string `koanf:"url"`
	Path            string `koanf:"path" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
//
// Address is typically "host:port". An empty address disables the
// reference-data cache.
type RedisConfig struct {
	Address  string        `koanf:"address"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Driver names returned by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

// Driver reports which storage backend the URL selects.
func (d DatabaseConfig) Driver() string {
	if strings.HasPrefix(d.URL, "postgres://") || strings.HasPrefix(d.URL, "postgresql://") {
		return DriverPostgres
	}
	return DriverDuckDB
}

// DuckDBPath returns the file the DuckDB backend should open.
func (d DatabaseConfig) DuckDBPath() string {
	if path, ok := strings.CutPrefix(d.URL, "duckdb://"); ok && path != "" {
		return path
	}
	return d.Path
}

// DefaultConfig returns the values applied before file and env sources.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Path:            "/tmp/starwars.duckdb",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Redis: RedisConfig{
			CacheTTL: 5 * time.Minute,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// environment variables, validates it, applies defaults, and returns the
// resulting config.
//
// Behavior summary:
//   - Loads DefaultConfig() as the base layer
//   - Loads CONFIG_PATH / config.yaml if present
//   - Loads env vars with prefix STARWARS_ ("__" means nesting)
//   - Loads DATABASE_URL and PORT without prefix
//   - Unmarshals into Config and validates required config blocks/fields
//   - Sets default observability if missing and validates it as well
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Platform-style variables. Returning "" from the callback drops the key,
	// so only the exact names are picked up.
	for name, key := range map[string]string{
		"DATABASE_URL": "database.url",
		"PORT":         "server.port",
	} {
		err := k.Load(env.Provider(name, ".", func(s string) string {
			if s != name {
				return ""
			}
			return key
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("could not load %s: %w", name, err)
		}
	}

	for _, path := range []string{"server.cors_allowed_origins", "observability.health_checks.checks"} {
		if err := splitSliceField(k, path); err != nil {
			return nil, err
		}
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Validate the entire config struct recursively.
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// If observability config wasn't provided, inject a default.
	// It's a pointer field, so nil means "missing".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment values regardless of what user set,
	// so logs and traces see consistent naming.
	mainConfig.Observability.ServiceName = "starwars-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// splitSliceField turns a comma-separated env value into a string slice.
func splitSliceField(k *koanf.Koanf, path string) error {
	raw, ok := k.Get(path).(string)
	if !ok || raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}

	if err := k.Set(path, values); err != nil {
		return fmt.Errorf("could not set %s: %w", path, err)
	}
	return nil
}
