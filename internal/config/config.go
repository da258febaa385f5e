// Package config loads camara-mcp configuration from TOML files with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/opencamara/camara-mcp/internal/common"
)

// Config holds all camara-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig holds the upstream open-data API settings.
type APIConfig struct {
	BaseURL     string `toml:"base_url"`
	SpecURL     string `toml:"spec_url"`
	SpecRetries int    `toml:"spec_retries"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing file is not an error; the defaults are used.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	// The spec URL follows the base URL unless set explicitly.
	if cfg.API.SpecURL == "" {
		cfg.API.SpecURL = cfg.API.BaseURL + "/api-docs"
	}

	return cfg, nil
}

// applyEnvOverrides applies CAMARA_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("CAMARA_BASE_URL"); url != "" {
		cfg.API.BaseURL = url
		cfg.API.SpecURL = ""
	}
	if url := os.Getenv("CAMARA_SPEC_URL"); url != "" {
		cfg.API.SpecURL = url
	}
	if retries := os.Getenv("CAMARA_SPEC_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil {
			cfg.API.SpecRetries = n
		}
	}
	if port := os.Getenv("CAMARA_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("CAMARA_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
