// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package overrides builds the override mapping from project-namespaced
// environment variables and command-line arguments.
package overrides

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/projconf/internal/logger"
	"github.com/MKhiriev/projconf/internal/resolver"
	"github.com/MKhiriev/projconf/models"
)

// ArgPrefix marks a CLI argument carrying a config override; the rest of
// the argument name is the dotted path.
const ArgPrefix = "config-setting-"

// EnvPrefix returns the environment variable prefix for overrides of the
// given project: <PROJECT>_CONFIG_.
func EnvPrefix(projectName string) string {
	return resolver.EnvVarName(projectName) + "_CONFIG_"
}

// EnvPath turns the part of a variable name after [EnvPrefix] into a dotted
// path: lowercased, with "_" separating segments. DB_HOST is "db.host".
//
// The case is not preserved: MYAPP_CONFIG_DB_HOST addresses db.host, never
// DB.HOST, so keys containing upper case or "_" cannot be set from the
// environment. Use a --config-setting-<path> argument for those.
func EnvPath(rest string) string {
	return strings.ReplaceAll(strings.ToLower(rest), "_", models.PathSeparator)
}

// Collect returns the overrides for projectName.
//
// environ holds "KEY=value" pairs and is applied first, in its own order;
// argv follows in declared order. When two overrides address overlapping
// paths the later one wins, so the outcome between environment variables
// depends on how the caller enumerated them.
//
// Variables whose name yields an invalid path (MYAPP_CONFIG_DB__HOST,
// MYAPP_CONFIG_DB_) are skipped and logged at debug level to log, which may
// be nil. Invalid argument paths are errors.
func Collect(projectName string, argv models.Argv, environ []string, log *logger.Logger) (models.Mapping, error) {
	if log == nil {
		log = logger.Nop()
	}

	result := models.Mapping{}
	prefix := EnvPrefix(projectName)

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)
		if rest == "" {
			continue
		}
		path := EnvPath(rest)
		if _, err := models.SplitPath(path); err != nil {
			log.Debug().Str("var", key).Err(err).Msg("skipping override variable")
			continue
		}
		if err := result.Set(path, models.Scalar(value)); err != nil {
			return nil, fmt.Errorf("error applying override %s: %w", key, err)
		}
	}

	for _, arg := range argv {
		if !strings.HasPrefix(arg.Name, ArgPrefix) {
			continue
		}
		path := strings.TrimPrefix(arg.Name, ArgPrefix)
		if path == "" {
			continue
		}
		v, err := models.FromAny(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("error converting override --%s: %w", arg.Name, err)
		}
		if err := result.Set(path, v); err != nil {
			return nil, fmt.Errorf("error applying override --%s: %w", arg.Name, err)
		}
	}

	return result, nil
}
