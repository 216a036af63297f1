// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fileloader

import (
	"context"
	"fmt"
	"plugin"

	"github.com/MKhiriev/projconf/models"
)

// PluginSymbol is the symbol a code-module config file must export.
const PluginSymbol = "Config"

// Plugin loads Go plugins built with -buildmode=plugin. The plugin exports
// Config as one of:
//
//	var Config map[string]any
//	func Config() map[string]any
//	func Config() (map[string]any, error)
//
// Opening a plugin runs its init code, so this loader is only registered
// when code modules are explicitly enabled.
type Plugin struct{}

// Load implements [models.FileLoader].
func (Plugin) Load(ctx context.Context, path string) (models.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	var raw any
	switch c := sym.(type) {
	case *map[string]any:
		raw = *c
	case map[string]any:
		raw = c
	case func() map[string]any:
		raw = c()
	case func() (map[string]any, error):
		if raw, err = c(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
		}
	default:
		return nil, fmt.Errorf("%w %s: symbol %s has unsupported type %T", ErrParse, path, PluginSymbol, sym)
	}

	return toMapping(path, raw)
}

// disabledPlugin stands in for [Plugin] while code modules are disabled.
type disabledPlugin struct{}

func (disabledPlugin) Load(_ context.Context, path string) (models.Mapping, error) {
	return nil, fmt.Errorf("%w: %s", ErrCodeModulesDisabled, path)
}
