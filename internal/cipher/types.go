package cipher

import (
	"errors"
	"strings"
)

// ErrInvalidInput marks text that contains runes outside A-Z.
var ErrInvalidInput = errors.New("text contains characters outside A-Z")

// Type identifies a cipher algorithm.
type Type int

const (
	Caesar Type = iota
	Playfair
	Vigenere
)

var typeNames = [...]string{
	Caesar:   "caesar",
	Playfair: "playfair",
	Vigenere: "vigenere",
}

var keyRules = [...]string{
	Caesar:   "non-negative integer shift (empty means 0)",
	Playfair: "any text; letters seed the 5x5 grid, J merges with I",
	Vigenere: "text with at least one letter; non-letters are ignored",
}

// String returns the command-line name of the cipher.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// KeyRule describes what the cipher accepts as a key.
func (t Type) KeyRule() string {
	if t < 0 || int(t) >= len(keyRules) {
		return ""
	}
	return keyRules[t]
}

// ParseType maps a command-line cipher name to its Type. Matching is exact.
func ParseType(name string) (Type, bool) {
	for i, candidate := range typeNames {
		if name == candidate {
			return Type(i), true
		}
	}
	return 0, false
}

// Types lists every supported cipher in declaration order.
func Types() []Type {
	return []Type{Caesar, Playfair, Vigenere}
}

// Mode selects the direction of a cipher.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Cipher transforms A-Z text in the requested direction.
type Cipher interface {
	Apply(text string, mode Mode) (string, error)
}

// Positional is implemented by ciphers whose mapping of rune i depends on i.
// ApplyAt behaves like Apply on text that begins offset runes into a longer
// message.
type Positional interface {
	ApplyAt(text string, mode Mode, offset int) (string, error)
}

// LengthPreserver reports whether output always has as many runes as input.
type LengthPreserver interface {
	PreservesLength() bool
}

// Spec pairs a cipher type with its key.
type Spec struct {
	Type Type
	Key  string
}

func (s Spec) String() string {
	return s.Type.String() + ":" + s.Key
}

// FormatSpecs renders specs as a comma separated list for logs and history.
func FormatSpecs(specs []Spec) string {
	parts := make([]string, len(specs))
	for i, spec := range specs {
		parts[i] = spec.Type.String()
	}
	return strings.Join(parts, ",")
}
