package store

import (
	"context"
	"sync"
)

// MemoryStorage keeps the slot in process memory. Content is lost when the
// process exits.
type MemoryStorage struct {
	mu      sync.RWMutex
	content string
	ok      bool
}

// NewMemoryStorage returns an empty in-memory slot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Read(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.content, m.ok, nil
}

func (m *MemoryStorage) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.content, m.ok = content, true
	return nil
}

func (m *MemoryStorage) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.content, m.ok = "", false
	return nil
}

// Close implements io.Closer; there is nothing to release.
func (m *MemoryStorage) Close() error {
	return nil
}
