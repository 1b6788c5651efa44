// Package logging configures slog for artlink: a human-readable console
// handler for interactive use, a JSON handler for captured runs, and typed
// attribute helpers shared across components.
package logging
