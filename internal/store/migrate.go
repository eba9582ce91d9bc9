package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// Migrate copies the serialised vault from src to dst unchanged. An absent
// source slot clears the destination. The content is not decoded, so the
// vault keeps its format and records keep their ciphertext.
func Migrate(ctx context.Context, src, dst Storage) error {
	log := logger.FromContext(ctx)

	content, ok, err := src.Read(ctx)
	if err != nil {
		log.Err(err).Str("func", "store.Migrate").Msg("failed to read source storage")
		return fmt.Errorf("%w: read source: %w", ErrStorageUnavailable, err)
	}

	if !ok {
		if err := dst.Clear(ctx); err != nil {
			log.Err(err).Str("func", "store.Migrate").Msg("failed to clear destination storage")
			return fmt.Errorf("%w: clear destination: %w", ErrStorageUnavailable, err)
		}
		log.Info().Str("func", "store.Migrate").Msg("source is empty, destination cleared")
		return nil
	}

	if err := dst.Write(ctx, content); err != nil {
		log.Err(err).Str("func", "store.Migrate").Msg("failed to write destination storage")
		return fmt.Errorf("%w: write destination: %w", ErrStorageUnavailable, err)
	}

	log.Info().Str("func", "store.Migrate").Int("bytes", len(content)).Msg("vault migrated")
	return nil
}
