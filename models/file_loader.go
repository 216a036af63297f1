// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "context"

//go:generate mockgen -source=file_loader.go -destination=../internal/mock/file_loader_mock.go -package=mock

// FileLoader turns a resolved config file path into a configuration mapping.
//
// Implementations parse a single format. A document whose top level is not a
// mapping yields an empty mapping; malformed content is an error.
type FileLoader interface {
	Load(ctx context.Context, path string) (Mapping, error)
}
