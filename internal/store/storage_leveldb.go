package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// slotKeyPrefix namespaces vault slots inside a LevelDB database.
const slotKeyPrefix = "vault/"

// LevelDBStorage keeps the slot under one key of a LevelDB database.
type LevelDBStorage struct {
	db     *leveldb.DB
	key    []byte
	logger *logger.Logger
}

// NewLevelDBStorage opens (or creates) the database in dir.
func NewLevelDBStorage(dir, slot string, logger *logger.Logger) (*LevelDBStorage, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		logger.Err(err).Str("func", "NewLevelDBStorage").Str("dir", dir).Msg("error opening leveldb")
		return nil, fmt.Errorf("error opening leveldb: %w", err)
	}
	return newLevelDBStorage(db, slot, logger), nil
}

// NewMemLevelDBStorage opens a LevelDB database held entirely in memory.
func NewMemLevelDBStorage(slot string, logger *logger.Logger) (*LevelDBStorage, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("error opening in-memory leveldb: %w", err)
	}
	return newLevelDBStorage(db, slot, logger), nil
}

func newLevelDBStorage(db *leveldb.DB, slot string, logger *logger.Logger) *LevelDBStorage {
	return &LevelDBStorage{
		db:     db,
		key:    []byte(slotKeyPrefix + slot),
		logger: logger,
	}
}

func (l *LevelDBStorage) Read(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	value, err := l.db.Get(l.key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		l.logger.Err(err).Str("func", "LevelDBStorage.Read").Msg("failed to get vault slot")
		return "", false, fmt.Errorf("error reading leveldb slot: %w", err)
	}
	return string(value), true, nil
}

func (l *LevelDBStorage) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.db.Put(l.key, []byte(content), nil); err != nil {
		l.logger.Err(err).Str("func", "LevelDBStorage.Write").Msg("failed to put vault slot")
		return fmt.Errorf("error writing leveldb slot: %w", err)
	}
	return nil
}

func (l *LevelDBStorage) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Delete of a missing key is not an error in leveldb
	if err := l.db.Delete(l.key, nil); err != nil {
		l.logger.Err(err).Str("func", "LevelDBStorage.Clear").Msg("failed to delete vault slot")
		return fmt.Errorf("error clearing leveldb slot: %w", err)
	}
	return nil
}

// Close releases the database.
func (l *LevelDBStorage) Close() error {
	return l.db.Close()
}
