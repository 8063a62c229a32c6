// Package config loads, normalizes, and validates whisperctl configuration.
//
// Configuration lives in a TOML file (by default
// ~/.config/whisperctl/config.toml). Load starts from Default, decodes the
// file when present, applies environment overrides, expands paths, and runs
// Validate so callers always receive a usable Config. CreateSample writes the
// embedded sample used by `whisperctl config init`.
package config
