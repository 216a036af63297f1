// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package printer renders a loaded configuration in the output formats of
// the projconf tool.
package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/projconf/models"
)

// ErrUnknownFormat is returned for formats Print does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrNotTable is returned when a non-mapping value is printed as TOML,
// which only encodes tables at the top level.
var ErrNotTable = errors.New("toml output requires a mapping")

// Print writes v to w in format: "json", "yaml", "toml" or "spew".
func Print(w io.Writer, format string, v models.Value) error {
	plain := v.ToAny()

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
	case "toml":
		if v.Kind() != models.KindMapping {
			return fmt.Errorf("%w, got %s", ErrNotTable, v.Kind())
		}
		if err := toml.NewEncoder(w).Encode(plain); err != nil {
			return fmt.Errorf("error encoding toml: %w", err)
		}
	case "spew":
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cfg.Fdump(w, plain)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}
