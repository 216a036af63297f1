// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// the tool starts loading.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Output.Format {
	case FormatJSON, FormatYAML, FormatTOML, FormatSpew:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	if cfg.Watch.Debounce < 0 {
		return ErrInvalidWatchConfigs
	}

	return nil
}
