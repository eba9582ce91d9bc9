package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// Storage is the persistence collaborator of the vault: one opaque string
// slot that can be read whole, written whole and cleared. Implementations
// never interpret the content.
type Storage interface {
	// Read returns the slot content. ok is false when nothing has been
	// written yet (or the slot was cleared); that is not an error.
	Read(ctx context.Context) (content string, ok bool, err error)

	// Write replaces the slot content.
	Write(ctx context.Context, content string) error

	// Clear removes the slot. Clearing an absent slot succeeds.
	Clear(ctx context.Context) error
}

// StorageCloser is a Storage holding resources such as a database handle.
type StorageCloser interface {
	Storage
	io.Closer
}
