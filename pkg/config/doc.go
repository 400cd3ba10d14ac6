// Package config loads the navigation health monitor configuration from
// YAML.
//
// Loading is split in three steps: Default returns the built-in values,
// Parse overlays a YAML document on them, and Validate checks the result
// without mutating it. Load reads and parses a file.
package config
