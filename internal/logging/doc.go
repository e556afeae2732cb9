// Package logging constructs the slog loggers used across c3media.
//
// Two formats are supported: a machine-readable JSON handler and a compact
// console handler that renders one line per record with key=value pairs.
package logging
