// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/modfile"
)

const (
	// PackageJSON is the npm-style manifest carrying a "name" field.
	PackageJSON = "package.json"
	// GoMod is the Go module manifest; the module path names the project.
	GoMod = "go.mod"
)

var (
	scopedName   = regexp.MustCompile(`^@[^/]+/(.+)$`)
	majorVersion = regexp.MustCompile(`^v[0-9]+$`)
)

// Manifest is a parsed project manifest.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path string
	// Name is the declared project name, empty when none is declared.
	Name string
}

// FindDir walks from start towards the filesystem root and returns the first
// directory containing one of filenames.
func FindDir(start string, filenames []string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range filenames {
			if fileExists(filepath.Join(dir, name)) {
				return dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Read parses the first of filenames present in dir. It reports false when
// no manifest is present.
func Read(dir string, filenames []string) (Manifest, bool, error) {
	for _, name := range filenames {
		p := filepath.Join(dir, name)
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Manifest{}, false, fmt.Errorf("error reading manifest %s: %w", p, err)
		}

		declared, err := parse(name, p, data)
		if err != nil {
			return Manifest{}, false, err
		}
		return Manifest{Path: p, Name: declared}, true, nil
	}

	return Manifest{}, false, nil
}

// StripScope turns a scoped package name "@scope/name" into "name".
func StripScope(name string) string {
	if m := scopedName.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

func parse(filename, p string, data []byte) (string, error) {
	switch filename {
	case GoMod:
		f, err := modfile.ParseLax(p, data, nil)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidManifest, p, err)
		}
		if f.Module == nil {
			return "", nil
		}
		return moduleName(f.Module.Mod.Path), nil
	default:
		var pkg struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &pkg); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidManifest, p, err)
		}
		return pkg.Name, nil
	}
}

// moduleName returns the last element of a module path, skipping a major
// version suffix: "github.com/org/app/v2" is "app".
func moduleName(modulePath string) string {
	modulePath = strings.TrimSuffix(modulePath, "/")
	base := path.Base(modulePath)
	if majorVersion.MatchString(base) {
		if parent := path.Dir(modulePath); parent != "." {
			return path.Base(parent)
		}
	}
	return base
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
