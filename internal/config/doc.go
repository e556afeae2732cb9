// Package config loads, normalizes, and validates c3media configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// C3MEDIA_BASE_URL. Obtain settings through this package so downstream code
// receives sanitized paths, normalized language lists, and clear validation
// errors.
package config
