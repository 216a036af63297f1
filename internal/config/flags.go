package config

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses the tool's own flags from args and returns the
// remaining arguments (everything after the first non-flag argument or
// "--"), which belong to the project being loaded.
//
// Flags:
//
//	-format output format: json, yaml, toml or spew
//	-get dotted path of the value to print
//	-log-level zerolog level name
//	-root project root directory
//	-project project name
//	-env environment name
//	-wd working directory to start the root search from
//	-system-dir system-wide config directory
//	-allow-code-modules enable Go plugin config files
//	-watch reprint the configuration when a config file changes
//	-watch-debounce quiet period before a reload (e.g. "250ms")
//	-settings JSON settings file path
//	-version print build information and exit
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("projconf", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Output.Format, "format", "", "Output format: json, yaml, toml or spew")
	fs.StringVar(&cfg.Output.Get, "get", "", "Dotted path of the value to print")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Loader.RootDir, "root", "", "Project root directory")
	fs.StringVar(&cfg.Loader.ProjectName, "project", "", "Project name")
	fs.StringVar(&cfg.Loader.Environment, "env", "", "Environment name")
	fs.StringVar(&cfg.Loader.WorkingDir, "wd", "", "Working directory to start the root search from")
	fs.StringVar(&cfg.Loader.SystemConfigDir, "system-dir", "", "System-wide config directory")
	fs.BoolVar(&cfg.Loader.AllowCodeModules, "allow-code-modules", false, "Enable Go plugin config files")
	fs.BoolVar(&cfg.Watch.Enabled, "watch", false, "Reprint the configuration when a config file changes")
	fs.DurationVar(&cfg.Watch.Debounce, "watch-debounce", 0, "Quiet period before a reload (e.g. 250ms)")
	fs.StringVar(&cfg.SettingsFilePath, "settings", "", "JSON settings file path")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
