// Package config provides configuration loading, merging, and validation
// for the projconf command-line tool itself (not for the projects it loads).
//
// Settings are assembled from several sources. Sources are merged with
// mergo, which only fills fields still at their zero value, so the first
// source to set a field wins:
//  1. Command-line flags
//  2. Environment variables prefixed with PROJCONF_
//  3. JSON settings file (-settings or PROJCONF_SETTINGS)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
