package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when settings
// are incomplete or invalid.
var (
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWatchConfigs indicates a negative watch debounce.
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
)
