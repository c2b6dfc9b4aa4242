package cli_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"mpags/internal/cipher"
	"mpags/internal/cli"
	"mpags/internal/failure"
)

func TestParseDefaults(t *testing.T) {
	settings, err := cli.Parse([]string{"prog"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if settings.HelpRequested || settings.VersionRequested {
		t.Fatal("expected no help or version request")
	}
	if settings.InputFile != "" || settings.OutputFile != "" {
		t.Fatalf("expected stdin/stdout, got %q/%q", settings.InputFile, settings.OutputFile)
	}
	if settings.Mode != cipher.Encrypt {
		t.Fatalf("expected encrypt mode, got %s", settings.Mode)
	}
	want := []cipher.Spec{{Type: cipher.Caesar, Key: ""}}
	if got := settings.Specs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected specs: %#v", got)
	}
}

func TestParseEmptyTokenList(t *testing.T) {
	settings, err := cli.Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if len(settings.CipherTypes) != 1 || settings.CipherTypes[0] != cipher.Caesar {
		t.Fatalf("expected default caesar cipher, got %v", settings.CipherTypes)
	}
}

func TestParseHelpShortCircuits(t *testing.T) {
	cases := [][]string{
		{"prog", "-h"},
		{"prog", "--help"},
		{"prog", "-c", "caesar", "--help", "--bogus"},
		{"prog", "--multi-cipher", "3", "-h", "-k"},
		{"prog", "-h", "-c", "enigma"},
	}
	for _, tokens := range cases {
		settings, err := cli.Parse(tokens)
		if err != nil {
			t.Fatalf("Parse(%v) returned error: %v", tokens, err)
		}
		if !settings.HelpRequested {
			t.Fatalf("Parse(%v): expected help flag", tokens)
		}
	}
}

func TestParseVersionShortCircuits(t *testing.T) {
	settings, err := cli.Parse([]string{"prog", "--version", "--multi-cipher", "x"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !settings.VersionRequested {
		t.Fatal("expected version flag")
	}
	if settings.HelpRequested {
		t.Fatal("help must not be set")
	}
}

func TestParseMissingValue(t *testing.T) {
	for _, flag := range []string{"--multi-cipher", "-i", "-o", "-k", "-c"} {
		_, err := cli.Parse([]string{"prog", "--decrypt", flag})
		if !errors.Is(err, failure.ErrMissingArgument) {
			t.Fatalf("flag %s as final token: expected missing argument, got %v", flag, err)
		}
		if !strings.Contains(failure.Message(err), flag) {
			t.Fatalf("flag %s: message should name the flag, got %q", flag, failure.Message(err))
		}
	}
}

func TestParseMultiCipherInvalidValue(t *testing.T) {
	for _, value := range []string{"", "two", "-1", "+2", "1.0", "99999999999999999999999999"} {
		_, err := cli.Parse([]string{"prog", "--multi-cipher", value})
		if !errors.Is(err, failure.ErrInvalidArgument) {
			t.Fatalf("--multi-cipher %q: expected invalid argument, got %v", value, err)
		}
		if errors.Is(err, failure.ErrMissingArgument) {
			t.Fatalf("--multi-cipher %q: must not be reported as missing", value)
		}
	}
}

func TestParseMultiCipherZero(t *testing.T) {
	settings, err := cli.Parse([]string{"prog", "--multi-cipher", "0"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(settings.CipherTypes) != 0 || len(settings.CipherKeys) != 0 {
		t.Fatalf("expected an empty pipeline, got %v / %v", settings.CipherTypes, settings.CipherKeys)
	}

	_, err = cli.Parse([]string{"prog", "--multi-cipher", "0", "-c", "caesar", "-k", "1"})
	if !errors.Is(err, failure.ErrInvalidArgument) {
		t.Fatalf("expected mismatch for zero count with a cipher, got %v", err)
	}
}

func TestParseUnknownCipher(t *testing.T) {
	_, err := cli.Parse([]string{"prog", "-c", "enigma"})
	if !errors.Is(err, failure.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "enigma") {
		t.Fatalf("error should name the cipher: %v", err)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	for _, token := range []string{"--bogus", "-x", "caesar", ""} {
		_, err := cli.Parse([]string{"prog", token})
		if !errors.Is(err, failure.ErrInvalidArgument) {
			t.Fatalf("token %q: expected invalid argument, got %v", token, err)
		}
	}
}

func TestParseCountMismatch(t *testing.T) {
	_, err := cli.Parse([]string{"prog", "--multi-cipher", "2", "-c", "caesar", "-k", "23"})
	if !errors.Is(err, failure.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"2 ciphers", "1 types", "1 keys"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in %q", fragment, msg)
		}
	}
}

func TestParseCountMatch(t *testing.T) {
	settings, err := cli.Parse([]string{
		"prog", "--multi-cipher", "2",
		"-c", "caesar", "-k", "23",
		"-c", "playfair", "-k", "playfairexample",
	})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	wantTypes := []cipher.Type{cipher.Caesar, cipher.Playfair}
	wantKeys := []string{"23", "playfairexample"}
	if !reflect.DeepEqual(settings.CipherTypes, wantTypes) {
		t.Fatalf("unexpected types: %v", settings.CipherTypes)
	}
	if !reflect.DeepEqual(settings.CipherKeys, wantKeys) {
		t.Fatalf("unexpected keys: %v", settings.CipherKeys)
	}
}

func TestParseOneSidedSingleCipherRejected(t *testing.T) {
	for _, tokens := range [][]string{
		{"prog", "-k", "5"},
		{"prog", "-c", "vigenere"},
	} {
		_, err := cli.Parse(tokens)
		if !errors.Is(err, failure.ErrInvalidArgument) {
			t.Fatalf("%v: expected invalid argument, got %v", tokens, err)
		}
		if !strings.Contains(err.Error(), "expected types and keys for 1 ciphers") {
			t.Fatalf("%v: count mismatch not reported: %v", tokens, err)
		}
	}
}

func TestParseTooManyForSingleCipher(t *testing.T) {
	_, err := cli.Parse([]string{"prog", "-c", "caesar", "-c", "vigenere", "-k", "1"})
	if !errors.Is(err, failure.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseFilesAndMode(t *testing.T) {
	settings, err := cli.Parse([]string{"prog", "-i", "in.txt", "--decrypt", "-o", "out.txt", "-c", "caesar", "-k", "4"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if settings.InputFile != "in.txt" || settings.OutputFile != "out.txt" {
		t.Fatalf("unexpected files: %q %q", settings.InputFile, settings.OutputFile)
	}
	if settings.Mode != cipher.Decrypt {
		t.Fatalf("expected decrypt mode, got %s", settings.Mode)
	}

	settings, err = cli.Parse([]string{"prog", "--decrypt", "--encrypt"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if settings.Mode != cipher.Encrypt {
		t.Fatal("last mode flag should win")
	}
}

func TestParseFlagValuesAreNotReinterpreted(t *testing.T) {
	settings, err := cli.Parse([]string{"prog", "-c", "caesar", "-k", "--decrypt", "-i", "-h"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if settings.HelpRequested {
		t.Fatal("-h consumed as a filename must not request help")
	}
	if settings.CipherKeys[0] != "--decrypt" || settings.InputFile != "-h" {
		t.Fatalf("unexpected values: %v %q", settings.CipherKeys, settings.InputFile)
	}
	if settings.Mode != cipher.Encrypt {
		t.Fatal("--decrypt consumed as a key must not change the mode")
	}
}

func TestParseIsPure(t *testing.T) {
	tokens := []string{"prog", "--multi-cipher", "2", "-c", "vigenere", "-k", "abc", "-c", "caesar", "-k", "3", "--decrypt"}
	first, err := cli.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := cli.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse results differ: %#v vs %#v", first, second)
	}
}

func TestWriteUsageNamesProgram(t *testing.T) {
	var buf bytes.Buffer
	cli.WriteUsage(&buf, "mpags-cipher")
	out := buf.String()
	for _, fragment := range []string{"Usage: mpags-cipher", "--multi-cipher N", "-c CIPHER", "--decrypt"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("usage missing %q", fragment)
		}
	}
}
