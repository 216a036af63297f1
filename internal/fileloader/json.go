package fileloader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/projconf/models"
)

// JSON loads JSON documents. Numbers keep their integer form where possible.
type JSON struct{}

// Load implements [models.FileLoader].
func (JSON) Load(ctx context.Context, path string) (models.Mapping, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %s: trailing data after top-level value", ErrParse, path)
	}

	return toMapping(path, raw)
}
