package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/projconf/internal/manifest"
)

func TestProjectRoot_ExplicitRootDir(t *testing.T) {
	root, err := ProjectRoot("/srv/app", t.TempDir(), []string{manifest.PackageJSON})
	require.NoError(t, err)
	assert.Equal(t, "/srv/app", root)
}

func TestProjectRoot_FromManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.PackageJSON), []byte(`{"name":"demo"}`), 0o644))
	wd := filepath.Join(dir, "cmd", "tool")
	require.NoError(t, os.MkdirAll(wd, 0o755))

	root, err := ProjectRoot("", wd, []string{manifest.PackageJSON})
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestProjectRoot_FallsBackToWorkingDir(t *testing.T) {
	wd := t.TempDir()

	root, err := ProjectRoot("", wd, []string{"projconf-test.manifest"})
	require.NoError(t, err)
	assert.Equal(t, wd, root)
}

func TestProjectName(t *testing.T) {
	withPkg := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(withPkg, manifest.PackageJSON), []byte(`{"name":"@acme/billing"}`), 0o644))

	tests := []struct {
		name  string
		given string
		root  string
		want  string
	}{
		{name: "explicit", given: "override", root: withPkg, want: "override"},
		{name: "explicit scoped", given: "@x/y", root: withPkg, want: "y"},
		{name: "manifest scoped", root: withPkg, want: "billing"},
		{name: "fallback", root: t.TempDir(), want: FallbackProjectName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectName(tt.given, tt.root, []string{manifest.PackageJSON})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectName_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.PackageJSON), []byte(`not json`), 0o644))

	_, err := ProjectName("", dir, []string{manifest.PackageJSON})
	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
}
