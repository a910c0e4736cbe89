// Package config loads, normalizes, and validates the downsort TOML
// configuration. Load never fails on a missing file; defaults apply.
package config
