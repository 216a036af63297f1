// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/projconf/internal/manifest"
)

// FallbackProjectName is used when neither an option nor a manifest names
// the project.
const FallbackProjectName = "project"

// ProjectRoot returns rootDir verbatim when set. Otherwise it walks upward
// from workingDir to the first directory holding one of manifests, falling
// back to workingDir itself.
func ProjectRoot(rootDir, workingDir string, manifests []string) (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}

	wd, err := filepath.Abs(workingDir)
	if err != nil {
		return "", fmt.Errorf("error resolving working directory: %w", err)
	}

	if dir, ok := manifest.FindDir(wd, manifests); ok {
		return dir, nil
	}
	return wd, nil
}

// ProjectName returns name when set, else the name declared by the manifest
// in rootDir, else [FallbackProjectName]. A scoped name "@scope/pkg"
// resolves to "pkg".
func ProjectName(name, rootDir string, manifests []string) (string, error) {
	if name == "" {
		m, ok, err := manifest.Read(rootDir, manifests)
		if err != nil {
			return "", err
		}
		if ok {
			name = m.Name
		}
	}

	if name == "" {
		name = FallbackProjectName
	}
	return manifest.StripScope(name), nil
}
