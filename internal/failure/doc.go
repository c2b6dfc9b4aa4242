// Package failure defines the closed error taxonomy shared by the argument
// parser, the cipher factory, and the command layer.
//
// Every error raised by mpags-cipher carries exactly one sentinel marker
// (missing argument, invalid argument, invalid key, I/O, configuration) so
// callers classify failures with errors.Is instead of string matching. The
// command layer uses the marker to pick the stderr prefix; nothing below it
// recovers from these errors.
package failure
