// Package config loads, normalizes, and validates remanifest configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the REMANIFEST_LOG_LEVEL
// environment override. Command-line flags take precedence over every value
// loaded here; that merge happens in the CLI.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical enum values, and clear validation errors.
package config
