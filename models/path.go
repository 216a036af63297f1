// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// PathSeparator separates the segments of a dotted path.
const PathSeparator = "."

// SplitPath splits a dotted path into its segments. Empty paths and empty
// segments ("a..b", ".a", "a.") are rejected with [ErrInvalidPath].
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, PathSeparator)
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// Get returns the value stored at a dotted path.
func (m Mapping) Get(path string) (Value, bool) {
	segments, err := SplitPath(path)
	if err != nil {
		return Value{}, false
	}

	current := m
	for i, segment := range segments {
		v, ok := current[segment]
		if !ok {
			return Value{}, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		if current, ok = v.Mapping(); !ok {
			return Value{}, false
		}
	}

	return Value{}, false
}

// Set stores v at a dotted path, creating intermediate mappings on demand.
//
// Collisions are resolved as last write wins: an intermediate segment that
// holds a scalar, sequence or null is replaced by a fresh mapping, and a
// shorter path replaces the whole branch below it.
func (m Mapping) Set(path string, v Value) error {
	segments, err := SplitPath(path)
	if err != nil {
		return err
	}

	current := m
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].Mapping()
		if !ok {
			next = Mapping{}
			current[segment] = Map(next)
		}
		current = next
	}
	current[segments[len(segments)-1]] = v

	return nil
}
