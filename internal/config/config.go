package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Roster    RosterConfig    `yaml:"roster"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type ServerConfig struct {
	Host         string        `yaml:"host" env:"ROSTER_SERVER_HOST"`
	Port         int           `yaml:"port" env:"ROSTER_SERVER_PORT"`
	StaticDir    string        `yaml:"static_dir" env:"ROSTER_STATIC_DIR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"ROSTER_SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"ROSTER_SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"ROSTER_SERVER_IDLE_TIMEOUT"`
}

// TransportConfig selects how the service is exposed. "http" serves the REST
// API (and MCP at /mcp when enabled); "stdio" serves MCP only.
type TransportConfig struct {
	Mode       string `yaml:"mode" env:"ROSTER_TRANSPORT_MODE"`
	MCPEnabled bool   `yaml:"mcp_enabled" env:"ROSTER_MCP_ENABLED"`
}

// DBConfig points at the enrollment journal. An empty path disables it.
type DBConfig struct {
	Path string `yaml:"path" env:"ROSTER_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"ROSTER_LOG_LEVEL"`
	Path  string `yaml:"path" env:"ROSTER_LOG_PATH"`
}

// RosterConfig controls the initial roster. Without a seed path the built-in
// activities are used.
type RosterConfig struct {
	SeedPath string `yaml:"seed_path" env:"ROSTER_SEED_PATH"`
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint" env:"ROSTER_OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"ROSTER_OTEL_SERVICE_NAME"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			StaticDir:    "static",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Transport: TransportConfig{
			Mode:       "http",
			MCPEnabled: true,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "mergington-roster",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("ROSTER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the server can't run with.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// Addr is the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
