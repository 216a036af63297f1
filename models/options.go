// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Defaults applied by [Options.WithDefaults].
const (
	DefaultCLIArgumentEnvironment = "config-env"
	DefaultCLIArgumentFile        = "c"
	DefaultEnvironment            = "local"
	DefaultGenericEnvVariable     = "APP_ENV"
	DefaultSystemConfigDir        = "/etc"
)

// DefaultManifestFilenames are the project manifests probed, in order, when
// discovering the project root and name.
var DefaultManifestFilenames = []string{"package.json", "go.mod"}

// Options describes how a project configuration is discovered. It is plain
// data so that it can be serialised and hashed as a cache key.
type Options struct {
	// Argv is the pre-parsed command line. It is the only source of CLI
	// arguments; see [ParseArgs] in package loader to build it from os.Args.
	Argv Argv `json:"argv,omitempty"`

	// EnvironmentOverride forces the environment name.
	EnvironmentOverride string `json:"environment_override,omitempty"`

	// CLIArgumentEnvironment names the argument carrying the environment.
	// Default: "config-env".
	CLIArgumentEnvironment string `json:"cli_argument_environment,omitempty"`

	// EnvVariableEnvironment replaces the derived <PROJECT>_ENV variable name.
	EnvVariableEnvironment string `json:"env_variable_environment,omitempty"`

	// GenericEnvVariable is the project-independent environment variable
	// consulted after <PROJECT>_ENV. Default: "APP_ENV".
	GenericEnvVariable string `json:"generic_env_variable,omitempty"`

	// DefaultEnvironment is used when nothing else names an environment.
	// Default: "local".
	DefaultEnvironment string `json:"default_environment,omitempty"`

	// RootDir forces the project root directory.
	RootDir string `json:"root_dir,omitempty"`

	// ProjectName forces the project name.
	ProjectName string `json:"project_name,omitempty"`

	// DefaultsFilename forces the defaults file candidates.
	DefaultsFilename []string `json:"defaults_filename,omitempty"`

	// FilenameOverride forces the main config file path.
	FilenameOverride string `json:"filename_override,omitempty"`

	// Filename is the fallback main config file candidates used when no
	// CLI argument or environment variable names one.
	Filename []string `json:"filename,omitempty"`

	// CLIArgumentFile names the argument carrying the main config path.
	// Default: "c".
	CLIArgumentFile string `json:"cli_argument_file,omitempty"`

	// EnvVariableFile replaces the derived <PROJECT>_CONFIG variable name.
	EnvVariableFile string `json:"env_variable_file,omitempty"`

	// WorkingDir is where the upward search for a manifest starts.
	// Default: the process working directory.
	WorkingDir string `json:"working_dir,omitempty"`

	// SystemConfigDir is searched for the main config file after the
	// project root. Default: "/etc".
	SystemConfigDir string `json:"system_config_dir,omitempty"`

	// ManifestFilenames are the project manifests probed in each directory.
	// Default: [DefaultManifestFilenames].
	ManifestFilenames []string `json:"manifest_filenames,omitempty"`

	// Env replaces the process environment when non-nil.
	Env map[string]string `json:"env,omitempty"`

	// AllowCodeModules enables loading Go plugin (.so) config files.
	AllowCodeModules bool `json:"allow_code_modules,omitempty"`
}

// WithDefaults returns a copy of o with every unset knob filled in.
func (o Options) WithDefaults() Options {
	if o.CLIArgumentEnvironment == "" {
		o.CLIArgumentEnvironment = DefaultCLIArgumentEnvironment
	}
	if o.CLIArgumentFile == "" {
		o.CLIArgumentFile = DefaultCLIArgumentFile
	}
	if o.DefaultEnvironment == "" {
		o.DefaultEnvironment = DefaultEnvironment
	}
	if o.GenericEnvVariable == "" {
		o.GenericEnvVariable = DefaultGenericEnvVariable
	}
	if o.SystemConfigDir == "" {
		o.SystemConfigDir = DefaultSystemConfigDir
	}
	if len(o.ManifestFilenames) == 0 {
		o.ManifestFilenames = DefaultManifestFilenames
	}
	return o
}
