package config

import (
	"os"
	"path/filepath"
)

const (
	defaultSlot = "vault"
	appDirName  = "keyvault"

	// DefaultPasswordLength is the length of generated passwords.
	DefaultPasswordLength = 12
)

// Default returns the configuration used for every field the user did not
// set. The default vault lives in the user's configuration directory.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Cipher: Cipher{
			Mode:     "modular",
			Alphabet: "lowercase",
			Fallback: "drop",
		},
		Vault: Vault{
			CaseFolding:    CaseFoldingLower,
			PasswordLength: DefaultPasswordLength,
		},
		Storage: Storage{
			Backend: BackendFile,
			Slot:    defaultSlot,
			Files: Files{
				Path: filepath.Join(defaultDir(), "vault.json"),
			},
		},
		Log: Log{
			Level: "info",
		},
	}
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}
