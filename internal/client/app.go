package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/projconf/internal/config"
	"github.com/MKhiriev/projconf/internal/logger"
	"github.com/MKhiriev/projconf/internal/printer"
	"github.com/MKhiriev/projconf/loader"
	"github.com/MKhiriev/projconf/models"
)

var _ Client = (*App)(nil)

// App loads a project's configuration and prints it.
type App struct {
	cfg    *config.StructuredConfig
	loader *loader.Loader
	out    io.Writer
	log    *logger.Logger
}

// NewApp builds an App for the tool settings cfg and the project arguments
// args (the arguments left after the tool's own flags).
func NewApp(cfg *config.StructuredConfig, args []string, out io.Writer, log *logger.Logger) *App {
	opts := cfg.LoaderOptions(loader.ParseArgs(args))

	l := loader.New(opts,
		loader.WithLogger(log.Logger),
		loader.WithWatchDebounce(cfg.Watch.Debounce),
	)

	return &App{cfg: cfg, loader: l, out: out, log: log}
}

// Run loads and prints the configuration. With watching enabled it then
// reprints on every change until ctx is done.
func (a *App) Run(ctx context.Context) error {
	merged, err := a.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	sources := a.loader.Sources()
	a.log.Info().
		Str("defaults", sources.Defaults).
		Str("main", sources.Main).
		Msg("config loaded")

	if err := a.print(merged); err != nil {
		return err
	}

	if !a.cfg.Watch.Enabled {
		return nil
	}

	return a.loader.Watch(ctx, func(m models.Mapping, err error) {
		if err != nil {
			a.log.Error().Err(err).Msg("error reloading config")
			return
		}
		if err := a.print(m); err != nil {
			a.log.Error().Err(err).Msg("error printing config")
		}
	})
}

func (a *App) print(m models.Mapping) error {
	v := models.Map(m)
	if a.cfg.Output.Get != "" {
		var ok bool
		if v, ok = m.Get(a.cfg.Output.Get); !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, a.cfg.Output.Get)
		}
	}

	if err := printer.Print(a.out, a.cfg.Output.Format, v); err != nil {
		return fmt.Errorf("error printing config: %w", err)
	}
	return nil
}
