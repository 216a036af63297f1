package fileloader

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/projconf/models"
)

// TOML loads TOML documents.
type TOML struct{}

// Load implements [models.FileLoader].
func (TOML) Load(ctx context.Context, path string) (models.Mapping, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	return toMapping(path, raw)
}
