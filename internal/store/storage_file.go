// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// FileStorage keeps the slot in a single file. Writes go to a temporary
// file in the same directory which is then renamed over the target, so a
// crash never leaves a half-written vault.
//
// With a [crypto.Sealer] the file content is sealed at rest; the vault
// inside is unchanged.
type FileStorage struct {
	path   string
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewFileStorage constructs a [FileStorage] for path. sealer may be nil.
func NewFileStorage(path string, sealer crypto.Sealer, logger *logger.Logger) *FileStorage {
	return &FileStorage{
		path:   path,
		sealer: sealer,
		logger: logger,
	}
}

func (f *FileStorage) Read(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "FileStorage.Read").Str("path", f.path).Msg("failed to read vault file")
		return "", false, fmt.Errorf("error reading vault file: %w", err)
	}

	if f.sealer != nil {
		data, err = f.sealer.Open(data)
		if err != nil {
			f.logger.Err(err).Str("func", "FileStorage.Read").Str("path", f.path).Msg("failed to open sealed vault file")
			return "", false, fmt.Errorf("error opening sealed vault file: %w", err)
		}
	}

	return string(data), true, nil
}

func (f *FileStorage) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := []byte(content)
	if f.sealer != nil {
		sealed, err := f.sealer.Seal(data)
		if err != nil {
			f.logger.Err(err).Str("func", "FileStorage.Write").Msg("failed to seal vault content")
			return fmt.Errorf("error sealing vault file: %w", err)
		}
		data = sealed
	}

	if err := f.writeAtomic(data); err != nil {
		f.logger.Err(err).Str("func", "FileStorage.Write").Str("path", f.path).Msg("failed to write vault file")
		return err
	}
	return nil
}

func (f *FileStorage) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Err(err).Str("func", "FileStorage.Clear").Str("path", f.path).Msg("failed to remove vault file")
		return fmt.Errorf("error removing vault file: %w", err)
	}
	return nil
}

// Close implements io.Closer; the file is not held open between calls.
func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) writeAtomic(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating vault directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing vault file: %w", err)
	}
	return nil
}
