// Package config loads, normalizes, and validates traynote configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Static knobs such as the update tool
// command, sub-step timeouts, and terminal fallbacks live here; runtime state
// the user changes from the tray menu belongs to the settings store.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
