// Package main hosts the mpags-cipher entrypoint and command graph.
//
// The root command is the cipher transform itself. Its tokens bypass cobra's
// flag parsing and go verbatim to the argument parser in internal/cli, so the
// historical flag set and error messages are preserved exactly. The ciphers,
// history, and config subcommands are ordinary cobra commands reached only
// when their name is the first token.
package main
