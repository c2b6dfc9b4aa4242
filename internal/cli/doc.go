// Package cli turns the raw mpags-cipher token list into validated Settings.
//
// Parsing is a single left-to-right scan with no I/O: the same tokens always
// produce the same Settings or the same classified error. Help and version
// requests stop the scan immediately and skip cipher count reconciliation.
package cli
