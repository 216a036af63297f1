package fileloader

import "errors"

var (
	// ErrParse wraps every failure to decode a config file.
	ErrParse = errors.New("error parsing config file")

	// ErrCodeModulesDisabled is returned when a code-module config file is
	// requested but code modules were not enabled.
	ErrCodeModulesDisabled = errors.New("code module config files are disabled")
)
