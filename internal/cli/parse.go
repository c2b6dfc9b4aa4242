package cli

import (
	"fmt"
	"strconv"

	"mpags/internal/cipher"
	"mpags/internal/failure"
)

const defaultCipherCount = 1

// Parse scans tokens, skipping the zeroth (program name), and returns the
// resulting Settings. Errors carry failure.ErrMissingArgument when a flag's
// value token is absent and failure.ErrInvalidArgument for everything else.
func Parse(tokens []string) (Settings, error) {
	settings := Settings{Mode: cipher.Encrypt}
	expected := uint64(defaultCipherCount)

	for i := 1; i < len(tokens); i++ {
		token := tokens[i]
		switch token {
		case "-h", "--help":
			settings.HelpRequested = true
			return settings, nil
		case "--version":
			settings.VersionRequested = true
			return settings, nil
		case "--encrypt":
			settings.Mode = cipher.Encrypt
		case "--decrypt":
			settings.Mode = cipher.Decrypt
		case "--multi-cipher", "-i", "-o", "-k", "-c":
			if i+1 >= len(tokens) {
				return Settings{}, failure.New(failure.ErrMissingArgument, missingMessage(token))
			}
			i++
			value := tokens[i]
			if err := settings.apply(token, value, &expected); err != nil {
				return Settings{}, err
			}
		default:
			return Settings{}, failure.New(failure.ErrInvalidArgument, "unknown argument '"+token+"'")
		}
	}

	// With neither -c nor -k a single unkeyed Caesar cipher is implied.
	if expected == defaultCipherCount && len(settings.CipherTypes) == 0 && len(settings.CipherKeys) == 0 {
		settings.CipherTypes = []cipher.Type{cipher.Caesar}
		settings.CipherKeys = []string{""}
	}

	types, keys := uint64(len(settings.CipherTypes)), uint64(len(settings.CipherKeys))
	if types != expected || keys != expected {
		return Settings{}, failure.New(failure.ErrInvalidArgument, fmt.Sprintf(
			"expected types and keys for %d ciphers but received %d types and %d keys",
			expected, types, keys))
	}
	return settings, nil
}

func (s *Settings) apply(flag, value string, expected *uint64) error {
	switch flag {
	case "--multi-cipher":
		n, err := strconv.ParseUint(value, 10, 0)
		if err != nil {
			return failure.New(failure.ErrInvalidArgument,
				"--multi-cipher requires a non-negative integer argument, got '"+value+"'")
		}
		*expected = n
	case "-i":
		s.InputFile = value
	case "-o":
		s.OutputFile = value
	case "-k":
		s.CipherKeys = append(s.CipherKeys, value)
	case "-c":
		typ, ok := cipher.ParseType(value)
		if !ok {
			return failure.New(failure.ErrInvalidArgument, "unknown cipher '"+value+"'")
		}
		s.CipherTypes = append(s.CipherTypes, typ)
	}
	return nil
}

func missingMessage(flag string) string {
	switch flag {
	case "--multi-cipher":
		return "--multi-cipher requires a non-negative integer argument"
	case "-i", "-o":
		return flag + " requires a filename argument"
	case "-k":
		return "-k requires a key argument"
	default:
		return "-c requires a cipher name argument"
	}
}
