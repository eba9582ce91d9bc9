// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

var sealMagic = []byte("KVS1")

// passphraseSealer is the private implementation of [Sealer].
type passphraseSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSealer(passphrase string) (Sealer, error) {
	return newSealer(passphrase, 1, 64*1024, 4)
}

func newSealer(passphrase string, time, memory uint32, threads uint8) (*passphraseSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &passphraseSealer{
		passphrase:   []byte(passphrase),
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
	}, nil
}

// IsSealed implements [Sealer].
func (s *passphraseSealer) IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealMagic)
}

// Seal implements [Sealer]. A fresh salt and nonce are drawn from the OS
// CSPRNG for every call.
func (s *passphraseSealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(sealMagic)+saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, sealMagic...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	// the header is authenticated as additional data
	header := bytes.Clone(blob[:len(sealMagic)+saltSize])
	return gcm.Seal(blob, nonce, plaintext, header), nil
}

// Open implements [Sealer].
func (s *passphraseSealer) Open(blob []byte) ([]byte, error) {
	if !s.IsSealed(blob) || len(blob) < len(sealMagic)+saltSize {
		return nil, ErrNotSealed
	}

	header := blob[:len(sealMagic)+saltSize]
	salt := header[len(sealMagic):]

	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	rest := blob[len(header):]
	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrNotSealed
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return plaintext, nil
}

func (s *passphraseSealer) gcm(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
