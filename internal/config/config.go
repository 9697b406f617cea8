// Package config loads deno-render-mcp configuration with priority:
// defaults -> TOML file -> environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/deno-render-mcp/internal/common"
)

// DefaultRegion is the Render region used when neither the invocation nor the
// environment supplies one.
const DefaultRegion = "oregon"

// Config holds all deno-render-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Render  RenderConfig         `toml:"render"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name" env:"DENO_RENDER_MCP_NAME"`
	Port string `toml:"port" env:"DENO_RENDER_MCP_PORT"`
}

// RenderConfig holds the process-wide Render settings read once at startup.
// Only the presence of the API key matters to the tools; its value is never
// written into any generated file.
type RenderConfig struct {
	APIKey string `toml:"api_key" env:"RENDER_API_KEY"`
	Region string `toml:"region" env:"RENDER_REGION"`
}

// HasAPIKey reports whether a Render API key was configured.
func (r RenderConfig) HasAPIKey() bool {
	return r.APIKey != ""
}

// DefaultRegion returns the configured region, falling back to "oregon".
func (r RenderConfig) DefaultRegion() string {
	if r.Region != "" {
		return r.Region
	}
	return DefaultRegion
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Deno-Render-MCP",
			Port: "4270",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/deno-render-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from an optional TOML file with environment
// overrides. A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}
