// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/projconf/models"
)

var nonEnvChars = regexp.MustCompile(`[^A-Z0-9]`)

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvironmentInput carries everything [Environment] consults.
type EnvironmentInput struct {
	Override      string
	Argv          models.Argv
	ArgName       string
	EnvVarName    string
	ProjectName   string
	GenericEnvVar string
	Default       string
	Lookup        LookupFunc
}

// EnvVarName derives an environment variable prefix from a project name:
// uppercase, with every character outside [A-Z0-9] replaced by "_".
func EnvVarName(projectName string) string {
	return nonEnvChars.ReplaceAllString(strings.ToUpper(projectName), "_")
}

// Environment returns the active environment name. The first non-empty
// source wins:
//  1. in.Override
//  2. the CLI argument in.ArgName
//  3. the variable in.EnvVarName, or <PROJECT>_ENV when unset
//  4. the generic variable in.GenericEnvVar
//  5. in.Default, or "local"
func Environment(in EnvironmentInput) string {
	if in.Override != "" {
		return in.Override
	}

	if raw, ok := in.Argv.Lookup(in.ArgName); ok && raw != nil {
		if v := fmt.Sprint(raw); v != "" {
			return v
		}
	}

	varName := in.EnvVarName
	if varName == "" {
		varName = EnvVarName(in.ProjectName) + "_ENV"
	}
	if v := lookup(in.Lookup, varName); v != "" {
		return v
	}

	if in.GenericEnvVar != "" {
		if v := lookup(in.Lookup, in.GenericEnvVar); v != "" {
			return v
		}
	}

	if in.Default != "" {
		return in.Default
	}
	return models.DefaultEnvironment
}

func lookup(fn LookupFunc, key string) string {
	if fn == nil {
		return ""
	}
	v, _ := fn(key)
	return v
}
