package store

import (
	"github.com/MKhiriev/go-key-vault/internal/cipher"
)

// VaultFormat describes how a vault's ciphertext was produced. It is
// written into every saved envelope and checked on load.
type VaultFormat struct {
	// Alphabet is the built-in alphabet name.
	Alphabet string
	// Fallback is the codec fallback policy for characters outside the
	// alphabet.
	Fallback cipher.FallbackPolicy
	// Mode is the default arithmetic for records without a mode tag.
	Mode cipher.Mode
}

// DefaultVaultFormat matches vaults written before format metadata existed.
func DefaultVaultFormat() VaultFormat {
	return VaultFormat{
		Alphabet: cipher.AlphabetLowercase,
		Fallback: cipher.FallbackDrop,
		Mode:     cipher.ModeModular,
	}
}
