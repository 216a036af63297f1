package client

import "errors"

// ErrPathNotFound is returned when -get names a path absent from the
// loaded configuration.
var ErrPathNotFound = errors.New("path not found in config")
