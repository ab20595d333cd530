// Package config loads and validates the cdrip application configuration.
//
// The application config is TOML and covers tool binaries, timeouts, and
// logging; it is distinct from the per-album JSON metadata file handled by
// the album package. Loading layers repository defaults under the parsed
// file, expands tilde paths, and validates the result before use.
package config
