package crypto

import "errors"

var (
	// ErrEmptyPassphrase is returned when a sealer is built without a
	// passphrase.
	ErrEmptyPassphrase = errors.New("seal passphrase is empty")

	// ErrNotSealed is returned by Open when the blob lacks the sealed-blob
	// magic or is too short to hold a header.
	ErrNotSealed = errors.New("data is not a sealed blob")

	// ErrOpenFailed is returned when authentication of a sealed blob fails,
	// which almost always means the passphrase is wrong.
	ErrOpenFailed = errors.New("sealed blob could not be opened")
)
