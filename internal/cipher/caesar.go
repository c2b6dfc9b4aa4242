package cipher

import (
	"strconv"
	"strings"

	"mpags/internal/failure"
)

// CaesarCipher shifts every letter by a fixed amount.
type CaesarCipher struct {
	shift int
}

// NewCaesarCipher parses key as a non-negative decimal shift. An empty key
// means no shift.
func NewCaesarCipher(key string) (*CaesarCipher, error) {
	if key == "" {
		return &CaesarCipher{}, nil
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return nil, failure.Wrap(failure.ErrInvalidKey, "caesar", "",
				"key must be a non-negative integer", nil)
		}
	}
	value, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return nil, failure.Wrap(failure.ErrInvalidKey, "caesar", "",
			"key is out of range", nil)
	}
	return &CaesarCipher{shift: int(value % alphabetSize)}, nil
}

// Shift returns the effective encryption shift (0-25).
func (c *CaesarCipher) Shift() int {
	return c.shift
}

func (c *CaesarCipher) Apply(text string, mode Mode) (string, error) {
	runes, err := checkText(text)
	if err != nil {
		return "", err
	}
	shift := directed(c.shift, mode)
	var b strings.Builder
	b.Grow(len(runes))
	for _, r := range runes {
		b.WriteRune(shiftRune(r, shift))
	}
	return b.String(), nil
}

func (c *CaesarCipher) PreservesLength() bool { return true }
