// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for a Warden deployment.
type Config struct {
	// StateDir is the directory holding the durable policy state:
	// the roles directory, the assignment table, and the two global
	// override sets.
	StateDir string `yaml:"state_dir"`

	// Catalog is the path to the host's catalog manifest (JSONC).
	// Empty when the host supplies the catalog programmatically.
	Catalog string `yaml:"catalog"`

	// LogDecisions enables one structured log line per permission
	// decision.
	LogDecisions bool `yaml:"log_decisions"`

	// AuditLog is the path of the administrative audit log. Empty
	// disables auditing.
	AuditLog string `yaml:"audit_log"`
}

// Default returns the default configuration: state under
// ${HOME}/.local/state/warden, decision logging off, auditing on.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".local", "state", "warden")

	return &Config{
		StateDir: stateDir,
		AuditLog: filepath.Join(stateDir, "audit.log"),
	}
}

// Load loads configuration from the file named by the WARDEN_CONFIG
// environment variable.
//
// This is the only way to load configuration without an explicit
// path. There are no fallbacks: if WARDEN_CONFIG is not set, this
// fails.
func Load() (*Config, error) {
	path := os.Getenv("WARDEN_CONFIG")
	if path == "" {
		return nil, errors.New("WARDEN_CONFIG environment variable not set; " +
			"set it to the path of your warden.yaml config file, or use the --config flag")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment
// variables do not override config values; the only expansion
// performed is ${HOME} and similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// path fields. WARDEN_STATE refers to the configured state directory
// so dependent paths can be rooted under it.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.StateDir = expandVars(c.StateDir, vars)
	vars["WARDEN_STATE"] = c.StateDir

	c.Catalog = expandVars(c.Catalog, vars)
	c.AuditLog = expandVars(c.AuditLog, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	return nil
}
