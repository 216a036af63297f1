// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Arg is one named command-line argument.
type Arg struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Argv is an ordered list of command-line arguments. Order is kept so that
// overrides are applied in the order they were declared.
type Argv []Arg

// Lookup returns the value of the last argument called name.
func (a Argv) Lookup(name string) (any, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return nil, false
}
