// Package config loads, validates, and defaults the imgpack TOML
// configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/imgpack/config.toml, then ./imgpack.toml. Missing files are not
// an error; defaults apply. All path fields are tilde-expanded and made
// absolute during load so downstream code never deals with relative paths.
package config
