// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fileloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/projconf/models"
)

// YAML loads YAML documents. Only the first document of a stream is read.
type YAML struct{}

// Load implements [models.FileLoader].
func (YAML) Load(ctx context.Context, path string) (models.Mapping, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	return toMapping(path, raw)
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return data, nil
}

func toMapping(path string, raw any) (models.Mapping, error) {
	m, err := models.MappingFromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	return m, nil
}
