// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/projconf/models"
)

// EnvPrefix is prepended to every environment variable read by the tool.
const EnvPrefix = "PROJCONF_"

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatSpew = "spew"
)

// StructuredConfig is the top-level settings container of the projconf
// tool.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log controls the tool's own diagnostic output on stderr.
	Log Log `envPrefix:"LOG_"`

	// Output controls how the loaded configuration is printed.
	Output Output `envPrefix:"OUTPUT_"`

	// Loader holds the knobs forwarded to the project loader.
	Loader Loader `envPrefix:"LOADER_"`

	// Watch enables reprinting the configuration whenever a config file
	// changes.
	Watch Watch `envPrefix:"WATCH_"`

	// SettingsFilePath is the optional path to a JSON settings file.
	// Env: PROJCONF_SETTINGS
	SettingsFilePath string `env:"SETTINGS"`

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: PROJCONF_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds output settings.
type Output struct {
	// Format is one of json, yaml, toml or spew.
	// Env: PROJCONF_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Get is an optional dotted path; only the value stored there is
	// printed.
	// Env: PROJCONF_OUTPUT_GET
	Get string `env:"GET"`
}

// Loader mirrors the subset of loader options exposed by the tool.
type Loader struct {
	// Env: PROJCONF_LOADER_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`
	// Env: PROJCONF_LOADER_PROJECT_NAME
	ProjectName string `env:"PROJECT_NAME"`
	// Env: PROJCONF_LOADER_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
	// Env: PROJCONF_LOADER_WORKING_DIR
	WorkingDir string `env:"WORKING_DIR"`
	// Env: PROJCONF_LOADER_SYSTEM_CONFIG_DIR
	SystemConfigDir string `env:"SYSTEM_CONFIG_DIR"`
	// Env: PROJCONF_LOADER_ALLOW_CODE_MODULES
	AllowCodeModules bool `env:"ALLOW_CODE_MODULES"`
}

// Watch holds file watching settings.
type Watch struct {
	// Env: PROJCONF_WATCH_ENABLED
	Enabled bool `env:"ENABLED"`
	// Debounce is the quiet period before a reload (e.g. "250ms").
	// Env: PROJCONF_WATCH_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// LoaderOptions converts the tool settings into loader options for the
// project arguments argv.
func (cfg *StructuredConfig) LoaderOptions(argv models.Argv) models.Options {
	return models.Options{
		Argv:                argv,
		EnvironmentOverride: cfg.Loader.Environment,
		RootDir:             cfg.Loader.RootDir,
		ProjectName:         cfg.Loader.ProjectName,
		WorkingDir:          cfg.Loader.WorkingDir,
		SystemConfigDir:     cfg.Loader.SystemConfigDir,
		AllowCodeModules:    cfg.Loader.AllowCodeModules,
	}
}

// GetStructuredConfig loads, merges, and validates the tool settings from
// args (usually os.Args[1:]), the environment, the optional JSON settings
// file and the built-in defaults.
//
// It also returns the arguments left after the tool's own flags; they are
// meant for the project being loaded.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.rest, nil
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log:    Log{Level: "info"},
		Output: Output{Format: FormatJSON},
		Watch:  Watch{Debounce: 100 * time.Millisecond},
	}
}
