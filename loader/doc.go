// Package loader discovers and loads a project's configuration.
//
// A [Loader] resolves the project root and name, the active environment and
// the config files, then deep-merges, in increasing precedence:
//  1. the defaults file (<name>-defaults.<ext> in the project root)
//  2. the defaults file's environments.<env> block
//  3. the main file (<name>.<ext> in the project root or the system config dir)
//  4. the main file's environments.<env> block
//  5. overrides from <PROJECT>_CONFIG_<PATH> variables and
//     --config-setting-<path> arguments
//
// A null value anywhere in the result deletes its key, and the top-level
// "environments" key is always removed.
//
// Basic usage:
//
//	l := loader.New(loader.Options{Argv: loader.ParseArgs(os.Args[1:])})
//	cfg, err := l.Load(ctx)
//
// Applications that load the same options repeatedly share a [Cache]:
//
//	cache := loader.NewCache()
//	cfg, err := cache.Get(ctx, opts)
package loader
