package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sky-flux/leitner/internal/platform/envutil"
)

var ErrUnknownDriver = errors.New("config: unknown storage driver")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the runtime configuration of the leitner service and CLI.
// Zero values are replaced by defaults; see field comments.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`             // "" → ":8080"
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // zero → 10s
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // "" → sqlite
	DSN    string `yaml:"dsn"`    // "" → leitner.db (sqlite only)
}

type LogConfig struct {
	Mode string `yaml:"mode"` // "" → development
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"` // "" → leitner
}

// Load reads configuration in three layers: the YAML file at path (skipped
// when path is empty), a .env file in the working directory if present, and
// LEITNER_* environment variables, which win.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Validate checks the storage settings.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("config: postgres driver requires a dsn")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config: shutdown timeout %v must not be negative", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = envutil.String("LEITNER_ADDR", c.Server.Addr)
	c.Server.ShutdownTimeout = envutil.Duration("LEITNER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Storage.Driver = envutil.String("LEITNER_DB_DRIVER", c.Storage.Driver)
	c.Storage.DSN = envutil.String("LEITNER_DB_DSN", c.Storage.DSN)
	c.Log.Mode = envutil.String("LEITNER_LOG_MODE", c.Log.Mode)
	c.Tracing.Enabled = envutil.Bool("LEITNER_TRACING", c.Tracing.Enabled)
	c.Tracing.ServiceName = envutil.String("LEITNER_SERVICE_NAME", c.Tracing.ServiceName)
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverSQLite
	}
	if c.Storage.DSN == "" && c.Storage.Driver == DriverSQLite {
		c.Storage.DSN = "leitner.db"
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "development"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "leitner"
	}
}
