package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-key-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the only component that sees both plaintext and key. It
// owns the in-memory vault of one session and persists it through a
// store.Storage after every mutation.
type VaultService interface {
	// Save encrypts password under key and appends it to the vault as a new
	// record for account.
	Save(ctx context.Context, account, password, key string) error

	// ListDecrypted decrypts every record with key. A record that cannot be
	// decrypted is reported with UndecryptableMarker instead of failing the
	// whole listing.
	ListDecrypted(ctx context.Context, key string) ([]models.VaultEntry, error)

	// Delete removes the record at index. Later records shift down by one.
	Delete(ctx context.Context, index int) error

	// Accounts lists account labels in vault order without decrypting.
	Accounts(ctx context.Context) ([]string, error)

	// ImportLegacy appends the records of a browser-era vault, a JSON object
	// mapping account to cipher text, in document order. It returns the
	// number of imported records.
	ImportLegacy(ctx context.Context, r io.Reader) (int, error)

	// Wipe removes every record and clears the storage slot.
	Wipe(ctx context.Context) error

	// GeneratePassword returns a random password drawn from the vault
	// alphabet. Runes that case folding would change are never drawn, so the
	// password is stored as returned. A non-positive length selects the
	// configured default.
	GeneratePassword(length int) (string, error)
}
