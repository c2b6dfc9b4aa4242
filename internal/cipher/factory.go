package cipher

import (
	"fmt"

	"mpags/internal/failure"
)

// New constructs the cipher for t keyed with key. Keys the cipher cannot use
// fail with failure.ErrInvalidKey.
func New(t Type, key string) (Cipher, error) {
	switch t {
	case Caesar:
		return NewCaesarCipher(key)
	case Playfair:
		return NewPlayfairCipher(key), nil
	case Vigenere:
		return NewVigenereCipher(key)
	default:
		return nil, failure.New(failure.ErrInvalidArgument, fmt.Sprintf("unsupported cipher type %d", int(t)))
	}
}

// Build constructs one cipher per spec, preserving order.
func Build(specs []Spec) ([]Cipher, error) {
	ciphers := make([]Cipher, 0, len(specs))
	for i, spec := range specs {
		c, err := New(spec.Type, spec.Key)
		if err != nil {
			return nil, fmt.Errorf("construct cipher %d (%s): %w", i+1, spec.Type, err)
		}
		ciphers = append(ciphers, c)
	}
	return ciphers, nil
}
