package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the vault store to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOutOfRange is returned by [VaultStore.DeleteAt] when the index does
	// not name a current record.
	ErrOutOfRange = errors.New("index out of range")

	// ErrStorageUnavailable wraps every error coming from a [Storage]
	// backend during load or save.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptVault is returned when stored content cannot be decoded as a
	// vault.
	ErrCorruptVault = errors.New("vault content is corrupt")

	// ErrAlphabetMismatch is returned when a vault was written with an
	// alphabet other than the configured one.
	ErrAlphabetMismatch = errors.New("vault was written with a different alphabet")

	// ErrNotVault is returned when stored content is valid JSON but not a
	// vault envelope, such as a legacy account-to-ciphertext object. It
	// matches ErrCorruptVault as well, so the content is never overwritten.
	ErrNotVault = fmt.Errorf("%w: content is not a vault envelope, legacy vaults are added with import-legacy", ErrCorruptVault)

	// ErrFallbackMismatch is returned when a vault was written with a
	// fallback policy other than the configured one.
	ErrFallbackMismatch = errors.New("vault was written with a different fallback policy")

	// ErrUnsupportedVersion is returned for vault envelopes from a newer
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported vault format version")

	// ErrUnknownBackend is returned by [NewStorage] for unrecognised backend
	// names.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL storage when an operation fails before the slot content can be
// used.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")
)
