package resolver

import (
	"os"
	"path/filepath"
)

// ResolvePath returns the first existing path built from dirs and
// candidates, or "" when none exists.
//
// Directories form the outer loop: every candidate is tried in one
// directory before moving to the next. An absolute candidate is used as-is.
func ResolvePath(candidates, dirs []string) string {
	for _, dir := range dirs {
		for _, candidate := range candidates {
			p := candidate
			if !filepath.IsAbs(p) {
				p = filepath.Join(dir, candidate)
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				continue
			}
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}

	return ""
}
