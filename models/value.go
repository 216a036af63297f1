// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Kind tags the variant held by a [Value].
type Kind uint8

const (
	// KindNull is an explicit null. After merging it acts as a delete
	// directive for the key holding it.
	KindNull Kind = iota
	// KindScalar is a string, bool, int64, uint64, float64 or time.Time.
	KindScalar
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a string-keyed set of values.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one node of a configuration tree. The zero Value is null.
type Value struct {
	kind   Kind
	scalar any
	seq    []Value
	m      Mapping
}

// Mapping is a configuration object: the root of every config source and
// the result of a merge.
type Mapping map[string]Value

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Scalar wraps a scalar. Integer and float types are normalised to int64,
// uint64 and float64. Passing a non-scalar panics; use [FromAny] for
// untrusted input.
func Scalar(v any) Value {
	s, ok := normalizeScalar(v)
	if !ok {
		panic(fmt.Sprintf("models: %T is not a scalar", v))
	}
	return Value{kind: KindScalar, scalar: s}
}

// Sequence wraps an ordered list of values.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Map wraps a mapping. A nil mapping becomes an empty one.
func Map(m Mapping) Value {
	if m == nil {
		m = Mapping{}
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// ScalarValue returns the scalar held by v and whether v is a scalar.
func (v Value) ScalarValue() (any, bool) {
	if v.kind != KindScalar {
		return nil, false
	}
	return v.scalar, true
}

// Items returns the elements of a sequence, nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Mapping returns the mapping held by v and whether v is a mapping.
func (v Value) Mapping() (Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, seq: items}
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	default:
		return v
	}
}

// ToAny converts v into plain Go values: nil, scalars, []any and
// map[string]any.
func (v Value) ToAny() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.ToAny()
		}
		return out
	case KindMapping:
		return v.m.ToAny()
	default:
		return nil
	}
}

// MarshalJSON encodes v as its plain Go form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// Clone returns a deep copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// ToAny converts m into a map[string]any tree.
func (m Mapping) ToAny() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.ToAny()
	}
	return out
}

// Keys returns the keys of m in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromAny converts a decoded document into a [Value]. It accepts the shapes
// produced by the YAML, JSON and TOML decoders: nil, scalars, json.Number,
// slices and string- or any-keyed maps.
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case Mapping:
		return Map(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Value{kind: KindScalar, scalar: i}, nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: json number %q", ErrUnsupportedValue, t.String())
		}
		return Value{kind: KindScalar, scalar: f}, nil
	case map[string]any:
		m := make(Mapping, len(t))
		for k, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = v
		}
		return Map(m), nil
	case map[any]any:
		m := make(Mapping, len(t))
		for k, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[fmt.Sprint(k)] = v
		}
		return Map(m), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Sequence(items...), nil
	}

	if s, ok := normalizeScalar(raw); ok {
		return Value{kind: KindScalar, scalar: s}, nil
	}

	// typed slices and maps, e.g. []map[string]any from the TOML decoder
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Sequence(items...), nil
	case reflect.Map:
		m := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			v, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			m[fmt.Sprint(iter.Key().Interface())] = v
		}
		return Map(m), nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
}

// MappingFromAny converts a decoded document into a [Mapping]. Documents
// whose top level is not a mapping (scalars, sequences, null) yield an empty
// mapping.
func MappingFromAny(raw any) (Mapping, error) {
	v, err := FromAny(raw)
	if err != nil {
		return nil, err
	}
	if m, ok := v.Mapping(); ok {
		return m, nil
	}
	return Mapping{}, nil
}

func normalizeScalar(v any) (any, bool) {
	switch t := v.(type) {
	case string, bool, int64, uint64, float64, time.Time:
		return t, true
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case uint:
		return uint64(t), true
	case uint8:
		return uint64(t), true
	case uint16:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case float32:
		return float64(t), true
	default:
		return nil, false
	}
}
