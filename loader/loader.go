// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/projconf/internal/fileloader"
	"github.com/MKhiriev/projconf/internal/logger"
	"github.com/MKhiriev/projconf/internal/merger"
	"github.com/MKhiriev/projconf/internal/overrides"
	"github.com/MKhiriev/projconf/internal/resolver"
	"github.com/MKhiriev/projconf/models"
)

// EnvironmentsKey is the top-level key holding per-environment blocks.
const EnvironmentsKey = "environments"

// Sources reports the files used by the last [Loader.Load]. Empty fields
// mean no file was found.
type Sources struct {
	Defaults string
	Main     string
}

// Loader loads the configuration of one project. Project name, root
// directory and environment are resolved once and reused by every Load;
// config files are read again on each call.
type Loader struct {
	opts     models.Options
	files    *fileloader.Registry
	log      *logger.Logger
	debounce time.Duration

	identityOnce sync.Once
	name         string
	root         string
	identityErr  error

	envOnce sync.Once
	env     string

	mu      sync.Mutex
	state   State
	sources Sources
}

// New returns a loader for opts. Unset options take their documented
// defaults.
func New(opts models.Options, fns ...Option) *Loader {
	opts = opts.WithDefaults()

	l := &Loader{
		opts:     opts,
		files:    fileloader.NewRegistry(opts.AllowCodeModules),
		log:      logger.Nop(),
		debounce: DefaultWatchDebounce,
	}
	for _, fn := range fns {
		fn(l)
	}

	return l
}

// ProjectName returns the project name.
func (l *Loader) ProjectName() (string, error) {
	name, _, err := l.identity()
	return name, err
}

// ProjectRootDir returns the project root directory.
func (l *Loader) ProjectRootDir() (string, error) {
	_, root, err := l.identity()
	return root, err
}

// Environment returns the active environment name.
func (l *Loader) Environment() (string, error) {
	name, _, err := l.identity()
	if err != nil {
		return "", err
	}

	l.envOnce.Do(func() {
		l.env = resolver.Environment(resolver.EnvironmentInput{
			Override:      l.opts.EnvironmentOverride,
			Argv:          l.opts.Argv,
			ArgName:       l.opts.CLIArgumentEnvironment,
			EnvVarName:    l.opts.EnvVariableEnvironment,
			ProjectName:   name,
			GenericEnvVar: l.opts.GenericEnvVariable,
			Default:       l.opts.DefaultEnvironment,
			Lookup:        l.lookupEnv,
		})
		l.advance(StateEnvResolved)
	})

	return l.env, nil
}

// State reports how far the loader has progressed.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Sources reports the files used by the last successful Load.
func (l *Loader) Sources() Sources {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sources
}

// Load resolves, reads and merges every configuration source. Missing files
// contribute nothing; malformed files and manifests fail the whole load.
func (l *Loader) Load(ctx context.Context) (models.Mapping, error) {
	name, root, err := l.identity()
	if err != nil {
		return nil, fmt.Errorf("error resolving project: %w", err)
	}

	env, err := l.Environment()
	if err != nil {
		return nil, fmt.Errorf("error resolving environment: %w", err)
	}

	l.log.Debug().
		Str("project", name).
		Str("root", root).
		Str("env", env).
		Strs("formats", l.files.Extensions()).
		Msg("resolved project")

	defaultsPath := l.defaultsPath(name, root)
	defaultsCfg, err := l.files.Load(ctx, defaultsPath)
	if err != nil {
		return nil, fmt.Errorf("error loading defaults file: %w", err)
	}
	l.advance(StateDefaultsLoaded)

	mainPath := l.mainPath(name, root)
	mainCfg, err := l.files.Load(ctx, mainPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}
	l.advance(StateMainLoaded)

	l.log.Debug().
		Str("defaults", defaultsPath).
		Str("main", mainPath).
		Msg("loaded config files")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	overrideCfg, err := overrides.Collect(name, l.opts.Argv, l.environ(), l.log)
	if err != nil {
		return nil, fmt.Errorf("error collecting overrides: %w", err)
	}
	l.advance(StateOverridesCollected)

	merged := merger.Merge(
		defaultsCfg,
		environmentBlock(defaultsCfg, env),
		mainCfg,
		environmentBlock(mainCfg, env),
		overrideCfg,
	)
	delete(merged, EnvironmentsKey)

	l.mu.Lock()
	l.sources = Sources{Defaults: defaultsPath, Main: mainPath}
	l.mu.Unlock()
	l.advance(StateMerged)

	l.log.Debug().Strs("keys", merged.Keys()).Msg("merged config")

	return merged, nil
}

func (l *Loader) identity() (string, string, error) {
	l.identityOnce.Do(func() {
		wd := l.opts.WorkingDir
		if wd == "" && l.opts.RootDir == "" {
			var err error
			if wd, err = os.Getwd(); err != nil {
				l.identityErr = fmt.Errorf("error getting working directory: %w", err)
				return
			}
		}

		root, err := resolver.ProjectRoot(l.opts.RootDir, wd, l.opts.ManifestFilenames)
		if err != nil {
			l.identityErr = err
			return
		}

		name, err := resolver.ProjectName(l.opts.ProjectName, root, l.opts.ManifestFilenames)
		if err != nil {
			l.identityErr = err
			return
		}

		l.name, l.root = name, root
		l.advance(StateNameResolved)
		l.advance(StateRootResolved)
	})

	return l.name, l.root, l.identityErr
}

func (l *Loader) defaultsCandidates(name string) []string {
	if len(l.opts.DefaultsFilename) > 0 {
		return l.opts.DefaultsFilename
	}
	return l.files.Candidates(name + "-defaults")
}

func (l *Loader) defaultsPath(name, root string) string {
	return resolver.ResolvePath(l.defaultsCandidates(name), []string{root})
}

// mainCandidates picks the main file candidates; the first source that names
// one wins.
func (l *Loader) mainCandidates(name string) []string {
	if l.opts.FilenameOverride != "" {
		return []string{l.opts.FilenameOverride}
	}

	if raw, ok := l.opts.Argv.Lookup(l.opts.CLIArgumentFile); ok && raw != nil {
		if p := fmt.Sprint(raw); p != "" {
			return []string{p}
		}
	}

	varName := l.opts.EnvVariableFile
	if varName == "" {
		varName = resolver.EnvVarName(name) + "_CONFIG"
	}
	if p, _ := l.lookupEnv(varName); p != "" {
		return []string{p}
	}

	if len(l.opts.Filename) > 0 {
		return l.opts.Filename
	}

	return l.files.Candidates(name)
}

func (l *Loader) mainDirs(root string) []string {
	return []string{root, l.opts.SystemConfigDir}
}

func (l *Loader) mainPath(name, root string) string {
	return resolver.ResolvePath(l.mainCandidates(name), l.mainDirs(root))
}

func (l *Loader) lookupEnv(key string) (string, bool) {
	if l.opts.Env != nil {
		v, ok := l.opts.Env[key]
		return v, ok
	}
	return os.LookupEnv(key)
}

// environ enumerates the environment as KEY=value pairs: process order for
// the real environment, sorted keys for Options.Env.
func (l *Loader) environ() []string {
	if l.opts.Env == nil {
		return os.Environ()
	}

	keys := make([]string, 0, len(l.opts.Env))
	for k := range l.opts.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+l.opts.Env[k])
	}
	return out
}

func (l *Loader) advance(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s > l.state {
		l.state = s
	}
}

// environmentBlock returns m.environments.<env> when it is a mapping.
func environmentBlock(m models.Mapping, env string) models.Mapping {
	envs, ok := m[EnvironmentsKey].Mapping()
	if !ok {
		return models.Mapping{}
	}
	block, ok := envs[env].Mapping()
	if !ok {
		return models.Mapping{}
	}
	return block
}
