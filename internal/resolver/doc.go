// Package resolver decides where configuration comes from: which file path
// exists, which environment is active, and which project is being loaded.
//
// Every function is pure apart from filesystem probes; environment variable
// access is injected through [LookupFunc] so callers can substitute a fixed
// environment.
package resolver
