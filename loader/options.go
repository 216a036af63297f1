package loader

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/projconf/internal/logger"
	"github.com/MKhiriev/projconf/models"
)

// Options describes how a project configuration is discovered.
type Options = models.Options

// DefaultWatchDebounce is how long [Loader.Watch] waits after the last file
// event before reloading.
const DefaultWatchDebounce = 100 * time.Millisecond

// Option customises a [Loader].
type Option func(*Loader)

// WithLogger makes the loader log its resolution steps to l.
func WithLogger(l zerolog.Logger) Option {
	return func(ld *Loader) {
		ld.log = logger.Wrap(l).GetChildLogger("loader")
	}
}

// WithFileLoader registers fl for files with extension ext, replacing any
// built-in loader for that extension. New extensions also become discovery
// candidates.
func WithFileLoader(ext string, fl models.FileLoader) Option {
	return func(ld *Loader) {
		ld.files.Register(ext, fl)
	}
}

// WithWatchDebounce sets the reload delay used by [Loader.Watch].
func WithWatchDebounce(d time.Duration) Option {
	return func(ld *Loader) {
		if d > 0 {
			ld.debounce = d
		}
	}
}
