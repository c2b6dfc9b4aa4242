// Package textio resolves the input source and output sink of a run.
//
// An empty path selects the process stream (stdin or stdout). Named output
// files are checked for a writable parent directory before anything is
// written and may be guarded by an advisory lock file so concurrent runs
// targeting the same path do not interleave.
package textio
