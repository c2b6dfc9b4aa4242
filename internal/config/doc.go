// Package config loads, normalizes, and validates mpags-cipher configuration.
//
// Settings live in an optional TOML file. Lookup order is an explicit path,
// then $MPAGS_CONFIG, then ~/.config/mpags/config.toml, then ./mpags.toml;
// when none exists the repository defaults apply. Paths are tilde-expanded and
// made absolute, and MPAGS_LOG_LEVEL overrides the configured log level.
//
// Command-line cipher selection never comes from here: the config only tunes
// how runs execute (worker count, chunk alignment, output locking) and what
// surrounds them (logging, run history).
package config
