// Package config loads u2ip4 settings from a YAML file.
//
// Values are applied in order: built-in defaults, the file, then
// environment variables (U2IP4_LOG_LEVEL, U2IP4_LISTEN, U2IP4_NETWORKS,
// U2IP4_MAX_CONNS). Command-line flags are applied on top by main.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Networks string       `yaml:"networks"`
	Server   ServerConfig `yaml:"server"`
}

// ServerConfig contains gRPC converter service settings.
type ServerConfig struct {
	Serve    bool   `yaml:"serve"`
	Listen   string `yaml:"listen"`
	MaxConns int    `yaml:"max_conns"`
}

var logLevels = map[string]bool{"Debug": true, "Info": true, "Warning": true, "Error": true}

// Load reads configuration from the YAML file at path.
// An empty path means defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "Info",
		Server: ServerConfig{
			Listen:   "localhost:50001",
			MaxConns: 64,
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("U2IP4_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("U2IP4_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}

	if v := os.Getenv("U2IP4_NETWORKS"); v != "" {
		cfg.Networks = v
	}

	if v := os.Getenv("U2IP4_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("U2IP4_MAX_CONNS: %w", err)
		}

		cfg.Server.MaxConns = n
	}

	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("log_level must be one of Debug, Info, Warning, Error, got %q", c.LogLevel)
	}

	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}

	if c.Server.MaxConns < 0 {
		return fmt.Errorf("server.max_conns cannot be negative")
	}

	return nil
}
