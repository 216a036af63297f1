// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merger deep-merges configuration mappings.
package merger

import "github.com/MKhiriev/projconf/models"

// Merge combines sources left to right and prunes nulls from the result.
//
// Where both sides hold a mapping the two are merged recursively; in every
// other case the later value replaces the earlier one, so sequences are
// replaced wholesale. Sources are never modified.
func Merge(sources ...models.Mapping) models.Mapping {
	result := models.Mapping{}
	for _, src := range sources {
		mergeInto(result, src)
	}
	return Prune(result)
}

func mergeInto(dst, src models.Mapping) {
	for key, incoming := range src {
		existing, ok := dst[key]
		if ok {
			dstMap, dstIsMap := existing.Mapping()
			srcMap, srcIsMap := incoming.Mapping()
			if dstIsMap && srcIsMap {
				mergeInto(dstMap, srcMap)
				continue
			}
		}
		dst[key] = incoming.Clone()
	}
}

// Prune deletes every null-valued key of m at any depth, including keys of
// mappings nested inside sequences. It modifies m in place and returns it.
func Prune(m models.Mapping) models.Mapping {
	for key, v := range m {
		if v.IsNull() {
			delete(m, key)
			continue
		}
		pruneValue(v)
	}
	return m
}

func pruneValue(v models.Value) {
	switch v.Kind() {
	case models.KindMapping:
		m, _ := v.Mapping()
		Prune(m)
	case models.KindSequence:
		for _, item := range v.Items() {
			pruneValue(item)
		}
	}
}
