// Package textnorm reduces free-form input to the upper-case A-Z alphabet the
// ciphers operate on.
//
// Letters are folded to their unaccented base form and upper-cased, ASCII
// digits are spelled out as English words, whitespace is skipped, and every
// other rune is discarded.
package textnorm
