package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// NewStorage builds the backend selected by cfg.Backend. SQL backends are
// connected and migrated before they are returned. The caller closes the
// result.
func NewStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) (StorageCloser, error) {
	logger.Debug().Str("func", "NewStorage").Str("backend", cfg.Backend).Msg("creating storage...")

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStorage(), nil

	case config.BackendFile:
		var sealer crypto.Sealer
		if cfg.Files.SealKey != "" {
			s, err := crypto.NewSealer(cfg.Files.SealKey)
			if err != nil {
				return nil, fmt.Errorf("error creating sealer: %w", err)
			}
			sealer = s
		}
		return NewFileStorage(cfg.Files.Path, sealer, logger), nil

	case config.BackendSQLite, config.BackendPostgres:
		connect := NewConnectSQLite
		if cfg.Backend == config.BackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLStorage(db, cfg.Slot), nil

	case config.BackendLevelDB:
		ldb, err := NewLevelDBStorage(cfg.LevelDB.Dir, cfg.Slot, logger)
		if err != nil {
			return nil, err
		}
		return ldb, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
