// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
)

// validate checks that the final merged [StructuredConfig] can be used to
// build a vault. A config that was never given any values (the zero value)
// is accepted so partial builders can be tested in isolation.
//
// Returns nil if the configuration is valid, or an error joining every
// failed group.
func (cfg *StructuredConfig) validate() error {
	if *cfg == (StructuredConfig{}) {
		return nil
	}

	return errors.Join(
		cfg.Cipher.validate(),
		cfg.Vault.validate(),
		cfg.Storage.validate(),
		cfg.Log.validate(),
	)
}

func (c Cipher) validate() error {
	mode, err := cipher.ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCipherConfigs, err)
	}
	if _, err := cipher.AlphabetByName(c.Alphabet); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCipherConfigs, err)
	}
	fallback, err := cipher.ParseFallback(c.Fallback)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCipherConfigs, err)
	}

	// modular arithmetic folds code points back into the alphabet ring
	if mode == cipher.ModeModular && fallback == cipher.FallbackCodepoint {
		return ErrIncompatibleModeFallback
	}
	return nil
}

func (v Vault) validate() error {
	if v.CaseFolding != CaseFoldingLower && v.CaseFolding != CaseFoldingNone {
		return fmt.Errorf("%w: unknown case folding %q", ErrInvalidVaultConfigs, v.CaseFolding)
	}
	if v.PasswordLength < 1 || v.PasswordLength > maxPasswordLength {
		return fmt.Errorf("%w: password length %d not in [1, %d]", ErrInvalidVaultConfigs, v.PasswordLength, maxPasswordLength)
	}
	return nil
}

// Validate reports whether s names a known backend with the settings it
// needs. It is used for storage configurations built outside
// [GetStructuredConfig], such as a migration target.
func (s Storage) Validate() error {
	return s.validate()
}

func (s Storage) validate() error {
	if s.Slot == "" {
		return fmt.Errorf("%w: empty slot", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendFile:
		if s.Files.Path == "" {
			return fmt.Errorf("%w: file backend needs a path", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a dsn", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendLevelDB:
		if s.LevelDB.Dir == "" {
			return fmt.Errorf("%w: leveldb backend needs a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}
	return nil
}

func (l Log) validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}

const maxPasswordLength = 1024
