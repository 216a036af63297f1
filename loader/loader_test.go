package loader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/projconf/internal/fileloader"
	"github.com/MKhiriev/projconf/internal/manifest"
	"github.com/MKhiriev/projconf/models"
)

// project creates a project directory named myapp holding files.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files[manifest.PackageJSON] = `{"name":"myapp"}`
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func options(t *testing.T, root string, env map[string]string) models.Options {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	return models.Options{
		WorkingDir:      root,
		SystemConfigDir: t.TempDir(),
		Env:             env,
	}
}

// ── Load ──

func TestLoad_EnvironmentBlocks(t *testing.T) {
	root := project(t, map[string]string{
		"myapp-defaults.yml": "port: 80\nenvironments:\n  prod:\n    port: 443\n",
		"myapp.yml":          "host: x\n",
	})

	cfg, err := New(options(t, root, map[string]string{"MYAPP_ENV": "prod"})).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"port": int64(443), "host": "x"}, cfg.ToAny())
}

func TestLoad_LayerPrecedence(t *testing.T) {
	root := project(t, map[string]string{
		"myapp-defaults.yml": "a: defaults\nb: defaults\nc: defaults\nd: defaults\ne: defaults\n" +
			"environments:\n  dev:\n    b: defaults-env\n    c: defaults-env\n    d: defaults-env\n    e: defaults-env\n",
		"myapp.yml": "c: main\nd: main\ne: main\n" +
			"environments:\n  dev:\n    d: main-env\n    e: main-env\n",
	})

	opts := options(t, root, map[string]string{"MYAPP_ENV": "dev"})
	opts.Argv = models.Argv{{Name: "config-setting-e", Value: "cli"}}

	cfg, err := New(opts).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": "defaults",
		"b": "defaults-env",
		"c": "main",
		"d": "main-env",
		"e": "cli",
	}, cfg.ToAny())
}

func TestLoad_OverridesFromEnvironmentAndArgs(t *testing.T) {
	root := project(t, map[string]string{
		"myapp.yml": "db:\n  host: localhost\n  port: 5432\n",
	})

	opts := options(t, root, map[string]string{
		"MYAPP_CONFIG_DB_HOST": "db.internal",
		"MYAPP_CONFIG_DB_USER": "admin",
	})
	opts.Argv = ParseArgs([]string{"--config-setting-db.user=root", "--config-setting-db.port", "6432"})

	cfg, err := New(opts).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"db": map[string]any{"host": "db.internal", "port": int64(6432), "user": "root"},
	}, cfg.ToAny())
}

func TestLoad_IgnoresMalformedOverrideVariables(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "db:\n  host: localhost\n"})

	cfg, err := New(options(t, root, map[string]string{
		"MYAPP_CONFIG_DB__HOST": "x",
		"MYAPP_CONFIG_DB_":      "x",
		"MYAPP_CONFIG__X":       "x",
	})).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"db": map[string]any{"host": "localhost"}}, cfg.ToAny())
}

func TestLoad_LogsFormatsAndMergedKeys(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "port: 80\nhost: x\n"})

	var buf bytes.Buffer
	l := New(options(t, root, nil), WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"formats":["yml","yaml","json","toml"]`)
	assert.Contains(t, buf.String(), `"keys":["host","port"]`)
}

func TestLoad_NullDeletesKey(t *testing.T) {
	root := project(t, map[string]string{
		"myapp-defaults.yml": "cache:\n  ttl: 60\n  size: 10\n",
		"myapp.json":         `{"cache": {"size": null}}`,
	})

	cfg, err := New(options(t, root, nil)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"cache": map[string]any{"ttl": int64(60)}}, cfg.ToAny())
}

func TestLoad_NoFiles(t *testing.T) {
	root := project(t, map[string]string{})

	l := New(options(t, root, nil))
	cfg, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
	assert.Equal(t, Sources{}, l.Sources())
}

func TestLoad_MainFileSelection(t *testing.T) {
	root := project(t, map[string]string{
		"myapp.yml":       "from: discovery\n",
		"custom.yml":      "from: filename-option\n",
		"by-arg.yml":      "from: argv\n",
		"by-env.yml":      "from: env\n",
		"by-override.yml": "from: override\n",
	})

	tests := []struct {
		name   string
		modify func(*models.Options)
		want   string
	}{
		{name: "discovery", modify: func(*models.Options) {}, want: "discovery"},
		{
			name:   "filename option",
			modify: func(o *models.Options) { o.Filename = []string{"missing.yml", "custom.yml"} },
			want:   "filename-option",
		},
		{
			name: "env variable",
			modify: func(o *models.Options) {
				o.Filename = []string{"custom.yml"}
				o.Env["MYAPP_CONFIG"] = "by-env.yml"
			},
			want: "env",
		},
		{
			name: "cli argument",
			modify: func(o *models.Options) {
				o.Env["MYAPP_CONFIG"] = "by-env.yml"
				o.Argv = models.Argv{{Name: "c", Value: "by-arg.yml"}}
			},
			want: "argv",
		},
		{
			name: "override",
			modify: func(o *models.Options) {
				o.Argv = models.Argv{{Name: "c", Value: "by-arg.yml"}}
				o.FilenameOverride = "by-override.yml"
			},
			want: "override",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(t, root, nil)
			tt.modify(&opts)

			cfg, err := New(opts).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"from": tt.want}, cfg.ToAny())
		})
	}
}

func TestLoad_SystemConfigDirFallback(t *testing.T) {
	root := project(t, map[string]string{})
	opts := options(t, root, nil)
	require.NoError(t, os.WriteFile(filepath.Join(opts.SystemConfigDir, "myapp.toml"), []byte("mode = \"system\"\n"), 0o644))

	l := New(opts)
	cfg, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"mode": "system"}, cfg.ToAny())
	assert.Equal(t, filepath.Join(opts.SystemConfigDir, "myapp.toml"), l.Sources().Main)
}

func TestLoad_ProjectRootBeatsSystemDir(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "mode: project\n"})
	opts := options(t, root, nil)
	require.NoError(t, os.WriteFile(filepath.Join(opts.SystemConfigDir, "myapp.yml"), []byte("mode: system\n"), 0o644))

	cfg, err := New(opts).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mode": "project"}, cfg.ToAny())
}

func TestLoad_DefaultsOnlyFromProjectRoot(t *testing.T) {
	root := project(t, map[string]string{})
	opts := options(t, root, nil)
	require.NoError(t, os.WriteFile(filepath.Join(opts.SystemConfigDir, "myapp-defaults.yml"), []byte("a: 1\n"), 0o644))

	cfg, err := New(opts).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestLoad_MalformedFile(t *testing.T) {
	root := project(t, map[string]string{"myapp.json": `{"broken":`})

	_, err := New(options(t, root, nil)).Load(context.Background())
	assert.ErrorIs(t, err, fileloader.ErrParse)
}

func TestLoad_InvalidManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.PackageJSON), []byte(`{`), 0o644))

	_, err := New(options(t, root, nil)).Load(context.Background())
	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
}

func TestLoad_CanceledContext(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "a: 1\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(options(t, root, nil)).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_CodeModulesDisabled(t *testing.T) {
	root := project(t, map[string]string{"plugin.so": "not really a plugin"})
	opts := options(t, root, nil)
	opts.FilenameOverride = "plugin.so"

	_, err := New(opts).Load(context.Background())
	assert.ErrorIs(t, err, fileloader.ErrCodeModulesDisabled)
}

// ── identity and state ──

func TestLoader_Identity(t *testing.T) {
	root := project(t, map[string]string{})
	wd := filepath.Join(root, "sub", "dir")
	require.NoError(t, os.MkdirAll(wd, 0o755))

	opts := options(t, root, map[string]string{"APP_ENV": "qa"})
	opts.WorkingDir = wd
	l := New(opts)

	name, err := l.ProjectName()
	require.NoError(t, err)
	assert.Equal(t, "myapp", name)

	dir, err := l.ProjectRootDir()
	require.NoError(t, err)
	assert.Equal(t, root, dir)

	env, err := l.Environment()
	require.NoError(t, err)
	assert.Equal(t, "qa", env)
}

func TestLoader_ExplicitIdentity(t *testing.T) {
	root := project(t, map[string]string{"billing.yml": "a: 1\n"})

	opts := options(t, root, nil)
	opts.RootDir = root
	opts.ProjectName = "billing"
	opts.EnvironmentOverride = "prod"

	l := New(opts)
	cfg, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, cfg.ToAny())

	env, err := l.Environment()
	require.NoError(t, err)
	assert.Equal(t, "prod", env)
}

func TestLoader_StateProgression(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "a: 1\n"})
	l := New(options(t, root, nil))

	assert.Equal(t, StateUninitialized, l.State())

	_, err := l.ProjectName()
	require.NoError(t, err)
	assert.Equal(t, StateRootResolved, l.State())

	_, err = l.Environment()
	require.NoError(t, err)
	assert.Equal(t, StateEnvResolved, l.State())

	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateMerged, l.State())
	assert.Equal(t, "merged", l.State().String())
	assert.Equal(t, filepath.Join(root, "myapp.yml"), l.Sources().Main)
}

func TestLoader_ReloadsFiles(t *testing.T) {
	root := project(t, map[string]string{"myapp.yml": "v: 1\n"})
	l := New(options(t, root, nil))

	cfg, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": int64(1)}, cfg.ToAny())

	require.NoError(t, os.WriteFile(filepath.Join(root, "myapp.yml"), []byte("v: 2\n"), 0o644))

	cfg, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": int64(2)}, cfg.ToAny())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "overrides-collected", StateOverridesCollected.String())
	assert.Equal(t, "unknown", State(42).String())
}
