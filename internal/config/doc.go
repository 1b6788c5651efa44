// Package config loads and validates TOML configuration.
//
// Load applies a defaults-first pipeline: start from Default(), decode
// the file over it, normalize derived values, then validate. A missing
// config file is not an error; the defaults run as-is.
package config
