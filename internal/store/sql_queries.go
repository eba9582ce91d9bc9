// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-vault/migrations"
)

const (
	slotsTable = "vault_slots"

	// upsertSlotSuffix is understood by both SQLite (3.24+) and PostgreSQL.
	upsertSlotSuffix = "ON CONFLICT (name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at"
)

// slotQueries builds the slot statements for one SQL dialect.
type slotQueries struct {
	builder sq.StatementBuilderType
}

func newSlotQueries(dialect string) slotQueries {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}
	return slotQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q slotQueries) selectSlot(name string) (string, []any, error) {
	query, args, err := q.builder.
		Select("content").
		From(slotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q slotQueries) upsertSlot(name, content string, now time.Time) (string, []any, error) {
	query, args, err := q.builder.
		Insert(slotsTable).
		Columns("name", "content", "updated_at").
		Values(name, content, now.UTC()).
		Suffix(upsertSlotSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q slotQueries) deleteSlot(name string) (string, []any, error) {
	query, args, err := q.builder.
		Delete(slotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
