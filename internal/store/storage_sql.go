// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// SQLStorage keeps the slot as one row of the vault_slots table. The same
// implementation serves SQLite and PostgreSQL; the dialect only changes
// placeholders and error classification.
type SQLStorage struct {
	*DB
	slot    string
	queries slotQueries
	now     func() time.Time
}

// NewSQLStorage constructs a [SQLStorage] for slot on db. The schema must
// already be migrated.
func NewSQLStorage(db *DB, slot string) *SQLStorage {
	return &SQLStorage{
		DB:      db,
		slot:    slot,
		queries: newSlotQueries(db.dialect),
		now:     time.Now,
	}
}

func (s *SQLStorage) Read(ctx context.Context) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.selectSlot(s.slot)
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Read").Msg("failed to create query")
		return "", false, err
	}

	var content string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&content)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Read").Str("slot", s.slot).Msg("failed to read vault slot")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return content, true, nil
}

func (s *SQLStorage) Write(ctx context.Context, content string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.upsertSlot(s.slot, content, s.now())
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Write").Msg("failed to create query")
		return err
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Write").Str("slot", s.slot).Msg("failed to upsert vault slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *SQLStorage) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.deleteSlot(s.slot)
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Clear").Msg("failed to create query")
		return err
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.Clear").Str("slot", s.slot).Msg("failed to delete vault slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *SQLStorage) Close() error {
	return s.DB.Close()
}
