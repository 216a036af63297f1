// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrInvalidPath is returned for empty dotted paths or paths with empty
	// segments.
	ErrInvalidPath = errors.New("invalid dotted path")

	// ErrUnsupportedValue is returned by [FromAny] when a decoded document
	// contains a Go type that has no configuration representation
	// (channels, functions, structs).
	ErrUnsupportedValue = errors.New("unsupported configuration value")
)
