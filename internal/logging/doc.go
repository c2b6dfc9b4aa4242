// Package logging assembles the structured slog loggers used by mpags-cipher.
//
// Console output is a compact single-line format meant for stderr, JSON output
// suits log shippers, and NewFromConfig tees everything at debug level into a
// JSON log file when a log directory is configured. Stdout is never used: it
// carries the cipher output.
//
// Context helpers attach the run identifier so every line emitted during a
// run can be correlated with its history record.
package logging
