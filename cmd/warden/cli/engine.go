// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/lib/config"
	"github.com/warden-foundation/warden/lib/engine"
)

// ConfigFlag is an embeddable struct that adds the shared --config
// flag to a command's parameter struct and opens the engine it
// names. Resolution order: the --config path, then the WARDEN_CONFIG
// environment variable, then built-in defaults (state under
// ${HOME}/.local/state/warden).
type ConfigFlag struct {
	Path string
}

// AddFlags binds the --config flag, satisfying [FlagBinder].
func (c *ConfigFlag) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.Path, "config", "",
		"path to the warden config file (defaults to $WARDEN_CONFIG)")
}

// Load resolves the configuration without opening an engine.
func (c *ConfigFlag) Load() (*config.Config, error) {
	if c.Path != "" {
		return config.LoadFile(c.Path)
	}
	if os.Getenv("WARDEN_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// OpenEngine loads the configuration and assembles an engine over
// it. The caller owns the returned engine and must Close it.
func (c *ConfigFlag) OpenEngine() (*engine.Engine, error) {
	cfg, err := c.Load()
	if err != nil {
		return nil, err
	}
	return engine.New(cfg, nil, NewCommandLogger())
}
