// Package fileloader implements [models.FileLoader] for the supported config
// file formats and a [Registry] that picks one by file extension.
//
// Built-in formats:
//   - YAML (.yml, .yaml), also the fallback for unknown extensions
//   - JSON (.json)
//   - TOML (.toml)
//   - Go plugins (.so), only when code modules are enabled
package fileloader
