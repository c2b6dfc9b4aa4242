package textnorm

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"mpags/internal/failure"
)

var digitWords = [...]string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}

// TransformChar maps a single input rune to its cipher-alphabet form. The
// result is empty when the rune has no representation.
func TransformChar(r rune) string {
	if r >= '0' && r <= '9' {
		return digitWords[r-'0']
	}
	if !unicode.IsLetter(r) {
		return ""
	}
	if r < unicode.MaxASCII {
		return string(unicode.ToUpper(r))
	}
	return fold(string(r))
}

// fold strips combining marks and upper-cases, keeping only A-Z in the result.
func fold(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return ""
	}
	upper := cases.Upper(language.Und).String(stripped)
	var b strings.Builder
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize reads r to EOF and returns the transformed text.
func Normalize(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	var b strings.Builder
	for {
		ch, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", failure.Wrap(failure.ErrIO, "textnorm", "read input", "", err)
		}
		if unicode.IsSpace(ch) {
			continue
		}
		b.WriteString(TransformChar(ch))
	}
}
