// Package history persists a journal of cipher runs in SQLite.
//
// Each invocation of the transform command may record one Run: its
// identifier, mode, cipher chain, sizes, timing, and outcome. The journal is
// opt-in through the [history] config section and is trimmed to the newest
// history.keep rows after each insert. Schema changes ship as embedded
// migrations applied on Open.
package history
