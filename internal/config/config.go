package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not set.
const DefaultPath = "rewind.yaml"

// Config is the runtime configuration shared by the CLI commands.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log" json:"log"`
	MCP    MCPConfig    `yaml:"mcp" json:"mcp"`
	Lock   LockConfig   `yaml:"lock" json:"lock"`
}

// ServerConfig configures the HTTP document API.
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr" validate:"required,hostname_port"`
	MetricsPath string `yaml:"metrics_path" json:"metrics_path" validate:"omitempty,startswith=/"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

// MCPConfig configures the MCP server transport.
type MCPConfig struct {
	Transport string `yaml:"transport" json:"transport" validate:"oneof=stdio sse"`
	Port      int    `yaml:"port" json:"port" validate:"min=1,max=65535"`
}

// LockConfig configures cross-process document locking.
// An empty RedisURL keeps locking in-process.
type LockConfig struct {
	RedisURL string        `yaml:"redis_url" json:"redis_url" validate:"omitempty,url"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" validate:"min=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        "localhost:8080",
			MetricsPath: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		MCP: MCPConfig{
			Transport: "stdio",
			Port:      8081,
		},
		Lock: LockConfig{
			Prefix: "rewind:",
			TTL:    30 * time.Second,
		},
	}
}

// Load reads a configuration file (YAML or JSON) layered over Default.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
