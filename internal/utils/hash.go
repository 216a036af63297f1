// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the loader packages.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes a SHA-256 digest of data using a pooled hasher.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// ContentHash serialises v to JSON and returns the hex-encoded SHA-256
// digest of the result. Map keys are sorted by encoding/json, so two
// deep-equal values always hash the same.
//
// Example usage:
//
//	key, err := utils.ContentHash(opts)
func ContentHash(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error serialising value for hashing: %w", err)
	}

	return hex.EncodeToString(Hash(data)), nil
}
