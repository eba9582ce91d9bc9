package service

import (
	"errors"

	"github.com/MKhiriev/go-key-vault/internal/store"
)

// UndecryptableMarker replaces the password of a record that did not decrypt
// to renderable text under the supplied key.
const UndecryptableMarker = "(invalid key)"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPasswordLength = errors.New("invalid password length")
	ErrUnknownCaseFolding    = errors.New("unknown case folding")

	ErrOutOfRange         = store.ErrOutOfRange
	ErrStorageUnavailable = store.ErrStorageUnavailable
)
