package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects a storage medium at rest. It knows nothing about vault
// records or the cipher; it only turns bytes into an authenticated blob and
// back.
//
// Blob layout:
//
//	magic (4) ‖ salt (16) ‖ nonce (12) ‖ AES-256-GCM ciphertext
//
// The sealing key is derived from a passphrase and the per-blob salt with
// Argon2id, so every Seal call produces a different blob.
type Sealer interface {
	// Seal encrypts plaintext and returns a self-describing blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open verifies and decrypts a blob produced by Seal. A wrong passphrase
	// or tampered blob yields ErrOpenFailed.
	Open(blob []byte) ([]byte, error)

	// IsSealed reports whether data starts with the sealed-blob magic.
	IsSealed(data []byte) bool
}
