// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the projconf command-line runtime.
//
// It wires the tool settings, the project loader and the printer into a
// single process lifecycle: load once and print, or keep reloading and
// reprinting while watching the config files.
package client
