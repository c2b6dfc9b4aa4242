package cipher

import (
	"strings"

	"mpags/internal/failure"
)

// VigenereCipher applies a Caesar shift chosen by the key letter at each
// position.
type VigenereCipher struct {
	key    string
	shifts []int
}

// NewVigenereCipher canonicalizes key to its upper-case letters. A key with
// no letters is rejected.
func NewVigenereCipher(key string) (*VigenereCipher, error) {
	letters := keyLetters(key)
	if len(letters) == 0 {
		return nil, failure.Wrap(failure.ErrInvalidKey, "vigenere", "",
			"key must contain at least one letter", nil)
	}
	shifts := make([]int, len(letters))
	for i, r := range letters {
		shifts[i] = int(r - 'A')
	}
	return &VigenereCipher{key: string(letters), shifts: shifts}, nil
}

// Key returns the canonical key.
func (v *VigenereCipher) Key() string {
	return v.key
}

func (v *VigenereCipher) Apply(text string, mode Mode) (string, error) {
	return v.ApplyAt(text, mode, 0)
}

func (v *VigenereCipher) ApplyAt(text string, mode Mode, offset int) (string, error) {
	runes, err := checkText(text)
	if err != nil {
		return "", err
	}
	if offset < 0 {
		offset = 0
	}
	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		shift := v.shifts[(offset+i)%len(v.shifts)]
		b.WriteRune(shiftRune(r, directed(shift, mode)))
	}
	return b.String(), nil
}

func (v *VigenereCipher) PreservesLength() bool { return true }
