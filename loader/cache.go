// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/projconf/internal/utils"
	"github.com/MKhiriev/projconf/models"
)

// Cache memoises loaded configurations by the content hash of their
// options. Concurrent first calls with equal options share a single load.
//
// The mapping returned by Get is shared by every caller of the same options
// and must be treated as read-only.
type Cache struct {
	opts []Option

	mu         sync.Mutex
	entries    map[string]models.Mapping
	generation uint64
	group      singleflight.Group
}

// NewCache returns an empty cache. fns are applied to every loader the
// cache creates.
func NewCache(fns ...Option) *Cache {
	return &Cache{
		opts:    fns,
		entries: make(map[string]models.Mapping),
	}
}

// Get returns the configuration for opts, loading it on the first call.
// Failed loads are not cached.
func (c *Cache) Get(ctx context.Context, opts models.Options) (models.Mapping, error) {
	key, err := utils.ContentHash(opts)
	if err != nil {
		return nil, fmt.Errorf("error hashing options: %w", err)
	}

	if m, ok := c.lookup(key); ok {
		return m, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if m, ok := c.lookup(key); ok {
			return m, nil
		}

		c.mu.Lock()
		generation := c.generation
		c.mu.Unlock()

		m, err := New(opts, c.opts...).Load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation == generation {
			c.entries[key] = m
		}
		c.mu.Unlock()

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(models.Mapping), nil
}

// Clear drops every cached configuration. Loads already in flight complete
// but their results are not stored.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]models.Mapping)
	c.generation++
}

// Len returns the number of cached configurations.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) lookup(key string) (models.Mapping, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.entries[key]
	return m, ok
}
