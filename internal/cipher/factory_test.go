package cipher_test

import (
	"errors"
	"testing"

	"mpags/internal/cipher"
	"mpags/internal/failure"
)

func TestParseType(t *testing.T) {
	for _, typ := range cipher.Types() {
		parsed, ok := cipher.ParseType(typ.String())
		if !ok || parsed != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), parsed, ok)
		}
	}
	for _, name := range []string{"Caesar", "rot13", ""} {
		if _, ok := cipher.ParseType(name); ok {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestNewBuildsEachType(t *testing.T) {
	cases := []struct {
		typ cipher.Type
		key string
	}{
		{cipher.Caesar, "23"},
		{cipher.Playfair, "playfairexample"},
		{cipher.Vigenere, "key"},
	}
	for _, tc := range cases {
		c, err := cipher.New(tc.typ, tc.key)
		if err != nil {
			t.Fatalf("New(%s): %v", tc.typ, err)
		}
		if c == nil {
			t.Fatalf("New(%s) returned nil cipher", tc.typ)
		}
	}
}

func TestBuildReportsInvalidKey(t *testing.T) {
	specs := []cipher.Spec{
		{Type: cipher.Caesar, Key: "3"},
		{Type: cipher.Caesar, Key: "three"},
	}
	_, err := cipher.Build(specs)
	if !errors.Is(err, failure.ErrInvalidKey) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestNewRejectsUnknownType(t *testing.T) {
	if _, err := cipher.New(cipher.Type(42), ""); !errors.Is(err, failure.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestFormatSpecs(t *testing.T) {
	specs := []cipher.Spec{{Type: cipher.Caesar, Key: "1"}, {Type: cipher.Vigenere, Key: "k"}}
	if got := cipher.FormatSpecs(specs); got != "caesar,vigenere" {
		t.Fatalf("unexpected format: %q", got)
	}
}
