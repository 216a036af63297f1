// Package manifest reads project manifests (package.json, go.mod) to find a
// project's root directory and declared name.
package manifest
