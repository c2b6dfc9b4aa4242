package cipher

import (
	"errors"
	"strings"
	"testing"
)

func TestPlayfairGrid(t *testing.T) {
	p := NewPlayfairCipher("playfair example")
	want := []string{"PLAYF", "IREXM", "BCDGH", "KNOQS", "TUVWZ"}
	got := p.Grid()
	if strings.Join(got, "/") != strings.Join(want, "/") {
		t.Fatalf("unexpected grid: %v", got)
	}
}

func TestPlayfairKnownAnswer(t *testing.T) {
	p := NewPlayfairCipher("playfairexample")
	got, err := p.Apply("HIDETHEGOLDINTHETREESTUMP", Encrypt)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "BMODZBXDNABEKUDMUIXMMOUVIF" {
		t.Fatalf("unexpected ciphertext: %q", got)
	}
	back, err := p.Apply(got, Decrypt)
	if err != nil {
		t.Fatalf("Apply decrypt: %v", err)
	}
	if back != "HIDETHEGOLDINTHETREXESTUMP" {
		t.Fatalf("unexpected plaintext: %q", back)
	}
}

func TestPrepareDigraphs(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"A":       "AZ",
		"Z":       "ZX",
		"BALLOON": "BALXLOON",
		"XX":      "XQXZ",
		"JIG":     "IXIG",
	}
	for in, want := range cases {
		if got := string(prepareDigraphs([]rune(in))); got != want {
			t.Fatalf("prepareDigraphs(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlayfairDecryptRejectsOddLength(t *testing.T) {
	p := NewPlayfairCipher("")
	if _, err := p.Apply("ABC", Decrypt); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for odd ciphertext, got %v", err)
	}
}
