package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{name: "single", path: "a", want: []string{"a"}},
		{name: "nested", path: "db.host", want: []string{"db", "host"}},
		{name: "empty", path: "", wantErr: true},
		{name: "double dot", path: "a..b", wantErr: true},
		{name: "leading dot", path: ".a", wantErr: true},
		{name: "trailing dot", path: "a.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapping_SetCreatesIntermediates(t *testing.T) {
	m := Mapping{}
	require.NoError(t, m.Set("db.primary.host", Scalar("foo")))

	v, ok := m.Get("db.primary.host")
	require.True(t, ok)
	assert.Equal(t, Scalar("foo"), v)
	assert.Equal(t, map[string]any{
		"db": map[string]any{"primary": map[string]any{"host": "foo"}},
	}, m.ToAny())
}

func TestMapping_SetLongerPathOverwritesScalar(t *testing.T) {
	m := Mapping{}
	require.NoError(t, m.Set("db", Scalar("sqlite")))
	require.NoError(t, m.Set("db.host", Scalar("foo")))

	assert.Equal(t, map[string]any{"db": map[string]any{"host": "foo"}}, m.ToAny())
}

func TestMapping_SetShorterPathReplacesBranch(t *testing.T) {
	m := Mapping{}
	require.NoError(t, m.Set("db.host", Scalar("foo")))
	require.NoError(t, m.Set("db.port", Scalar(1)))
	require.NoError(t, m.Set("db", Scalar("sqlite")))

	assert.Equal(t, map[string]any{"db": "sqlite"}, m.ToAny())
}

func TestMapping_SetKeepsSiblings(t *testing.T) {
	m := Mapping{"db": Map(Mapping{"port": Scalar(5432)})}
	require.NoError(t, m.Set("db.host", Scalar("foo")))

	assert.Equal(t, map[string]any{"db": map[string]any{"port": int64(5432), "host": "foo"}}, m.ToAny())
}

func TestMapping_SetInvalidPath(t *testing.T) {
	err := Mapping{}.Set("a..b", Scalar(1))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestMapping_GetMissing(t *testing.T) {
	m := Mapping{"a": Scalar(1)}

	_, ok := m.Get("a.b")
	assert.False(t, ok)
	_, ok = m.Get("missing")
	assert.False(t, ok)
	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestArgv_LookupLastWins(t *testing.T) {
	argv := Argv{{Name: "c", Value: "a.yml"}, {Name: "x", Value: 1}, {Name: "c", Value: "b.yml"}}

	v, ok := argv.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "b.yml", v)

	_, ok = argv.Lookup("missing")
	assert.False(t, ok)
}

func TestOptions_WithDefaults(t *testing.T) {
	o := Options{}.WithDefaults()

	assert.Equal(t, "config-env", o.CLIArgumentEnvironment)
	assert.Equal(t, "c", o.CLIArgumentFile)
	assert.Equal(t, "local", o.DefaultEnvironment)
	assert.Equal(t, "APP_ENV", o.GenericEnvVariable)
	assert.Equal(t, "/etc", o.SystemConfigDir)
	assert.Equal(t, DefaultManifestFilenames, o.ManifestFilenames)

	custom := Options{CLIArgumentFile: "config", DefaultEnvironment: "dev"}.WithDefaults()
	assert.Equal(t, "config", custom.CLIArgumentFile)
	assert.Equal(t, "dev", custom.DefaultEnvironment)
}
