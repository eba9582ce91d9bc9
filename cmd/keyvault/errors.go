package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

// describe prefixes err with the message shown to the user for its kind.
// Unknown errors are returned unchanged.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var msg string
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidPasswordLength):
		msg = app.MsgInvalidInput
	case errors.Is(err, store.ErrOutOfRange):
		msg = app.MsgOutOfRange
	case errors.Is(err, store.ErrAlphabetMismatch):
		msg = app.MsgAlphabetMismatch
	case errors.Is(err, store.ErrFallbackMismatch):
		msg = app.MsgFallbackMismatch
	case errors.Is(err, store.ErrNotVault):
		msg = app.MsgNotVault
	case errors.Is(err, store.ErrCorruptVault),
		errors.Is(err, store.ErrUnsupportedVersion):
		msg = app.MsgCorruptVault
	case errors.Is(err, store.ErrStorageUnavailable):
		msg = app.MsgStorageUnavailable
	default:
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
