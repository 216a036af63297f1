// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fileloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/projconf/models"
)

// PluginExtension is the file extension of code-module config files.
const PluginExtension = "so"

// Registry maps file extensions to loaders and implements
// [models.FileLoader] by dispatching on the extension of the path.
type Registry struct {
	exts     []string
	loaders  map[string]models.FileLoader
	fallback models.FileLoader
}

// NewRegistry returns a registry with the built-in text formats. The Go
// plugin loader is added only when allowCodeModules is set; otherwise .so
// paths are rejected with [ErrCodeModulesDisabled].
func NewRegistry(allowCodeModules bool) *Registry {
	r := &Registry{
		loaders:  make(map[string]models.FileLoader),
		fallback: YAML{},
	}

	r.Register("yml", YAML{})
	r.Register("yaml", YAML{})
	r.Register("json", JSON{})
	r.Register("toml", TOML{})

	if allowCodeModules {
		r.Register(PluginExtension, Plugin{})
	} else {
		r.loaders[PluginExtension] = disabledPlugin{}
	}

	return r
}

// Register adds or replaces the loader for ext (with or without the leading
// dot). Newly added extensions are appended to [Registry.Extensions].
func (r *Registry) Register(ext string, loader models.FileLoader) {
	ext = normalizeExt(ext)
	if !r.listed(ext) {
		r.exts = append(r.exts, ext)
	}
	r.loaders[ext] = loader
}

// Extensions returns the discoverable extensions in registration order.
func (r *Registry) Extensions() []string {
	return append([]string(nil), r.exts...)
}

// Candidates returns base.<ext> for every discoverable extension.
func (r *Registry) Candidates(base string) []string {
	out := make([]string, 0, len(r.exts))
	for _, ext := range r.exts {
		out = append(out, base+"."+ext)
	}
	return out
}

// Load implements [models.FileLoader]. An empty path or a path that does not
// exist yields an empty mapping.
func (r *Registry) Load(ctx context.Context, path string) (models.Mapping, error) {
	if path == "" {
		return models.Mapping{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Mapping{}, nil
		}
		return nil, fmt.Errorf("error checking config file %s: %w", path, err)
	}

	loader, ok := r.loaders[normalizeExt(filepath.Ext(path))]
	if !ok {
		loader = r.fallback
	}

	m, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = models.Mapping{}
	}
	return m, nil
}

func (r *Registry) listed(ext string) bool {
	for _, e := range r.exts {
		if e == ext {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
