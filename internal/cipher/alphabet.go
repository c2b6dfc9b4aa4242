package cipher

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const alphabetSize = 26

// checkText returns text as runes when every rune is A-Z.
func checkText(text string) ([]rune, error) {
	runes := []rune(text)
	for i, r := range runes {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidInput, r, i)
		}
	}
	return runes, nil
}

func shiftRune(r rune, shift int) rune {
	return 'A' + (r-'A'+rune(shift))%alphabetSize
}

// directed converts an encryption shift into the shift for mode.
func directed(shift int, mode Mode) int {
	if mode == Decrypt {
		return (alphabetSize - shift) % alphabetSize
	}
	return shift
}

// keyLetters upper-cases key and keeps only A-Z.
func keyLetters(key string) []rune {
	upper := cases.Upper(language.Und).String(key)
	letters := make([]rune, 0, len(upper))
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
	}
	return letters
}
