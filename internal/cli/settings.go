package cli

import "mpags/internal/cipher"

// Settings is the outcome of a successful Parse.
type Settings struct {
	HelpRequested    bool
	VersionRequested bool
	InputFile        string
	OutputFile       string
	CipherTypes      []cipher.Type
	CipherKeys       []string
	Mode             cipher.Mode
}

// Specs pairs cipher types with their keys in application order.
func (s Settings) Specs() []cipher.Spec {
	specs := make([]cipher.Spec, 0, len(s.CipherTypes))
	for i, typ := range s.CipherTypes {
		key := ""
		if i < len(s.CipherKeys) {
			key = s.CipherKeys[i]
		}
		specs = append(specs, cipher.Spec{Type: typ, Key: key})
	}
	return specs
}
