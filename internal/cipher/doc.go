// Package cipher implements the classical substitution ciphers applied by the
// mpags-cipher pipeline and the factory that builds them from a (type, key)
// pair.
//
// All ciphers operate on upper-case A-Z text only; callers are expected to
// run input through textnorm first. A constructed cipher is immutable, so a
// single value may be shared by every pipeline worker.
package cipher
