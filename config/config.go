// Package config provides YAML configuration parsing for CrunchBoard.
//
// This package enables running CrunchBoard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	listen_addr: 127.0.0.1:8080
//	prime_bound: 1000000
//	matrix_size: 200
//	workers: 8
//	history_size: 50
//
// Every key is optional; an empty file yields the reference defaults.
package config

import (
	"fmt"
	"net"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Default values applied by [Parse] when a key is absent.
const (
	DefaultListenAddr  = "127.0.0.1:8080"
	DefaultPrimeBound  = 1_000_000
	DefaultMatrixSize  = 200
	DefaultHistorySize = 50
)

// Config is the root configuration structure for CrunchBoard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}.
	// Defaults to 127.0.0.1:8080.
	ListenAddr string `yaml:"listen_addr"`

	// PrimeBound is the inclusive upper bound for prime finding.
	// Defaults to 1,000,000.
	PrimeBound int `yaml:"prime_bound"`

	// MatrixSize is the square matrix dimension. Defaults to 200.
	MatrixSize int `yaml:"matrix_size"`

	// Workers is the per-computation fork-join parallelism.
	// 0 (the default) means one worker per CPU.
	Workers int `yaml:"workers"`

	// HistorySize is how many completed runs /api/runs retains.
	// Defaults to 50.
	HistorySize int `yaml:"history_size"`
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the listen address are expanded before
// validation. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.PrimeBound == 0 {
		cfg.PrimeBound = DefaultPrimeBound
	}
	if cfg.MatrixSize == 0 {
		cfg.MatrixSize = DefaultMatrixSize
	}
	if cfg.HistorySize == 0 {
		cfg.HistorySize = DefaultHistorySize
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	expanded, err := expandEnvVars(c.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen_addr: %w", err)
	}
	c.ListenAddr = expanded

	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("listen_addr: invalid host:port %q: %w", c.ListenAddr, err)
	}

	if c.PrimeBound < 0 {
		return fmt.Errorf("prime_bound cannot be negative, got %d", c.PrimeBound)
	}

	if c.MatrixSize < 0 {
		return fmt.Errorf("matrix_size cannot be negative, got %d", c.MatrixSize)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}

	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}

	return nil
}
