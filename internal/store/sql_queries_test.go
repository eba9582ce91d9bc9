package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/migrations"
)

func TestSlotQueries_SQLite(t *testing.T) {
	q := newSlotQueries(migrations.DialectSQLite)

	query, args, err := q.selectSlot("home")
	require.NoError(t, err)
	assert.Equal(t, "SELECT content FROM vault_slots WHERE name = ?", query)
	assert.Equal(t, []any{"home"}, args)

	query, args, err = q.deleteSlot("home")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM vault_slots WHERE name = ?", query)
	assert.Equal(t, []any{"home"}, args)

	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	query, args, err = q.upsertSlot("home", "data", now)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO vault_slots")
	assert.Contains(t, query, "VALUES (?,?,?)")
	assert.Contains(t, query, upsertSlotSuffix)
	assert.Equal(t, []any{"home", "data", now.UTC()}, args)
}

func TestSlotQueries_Postgres(t *testing.T) {
	q := newSlotQueries(migrations.DialectPostgres)

	query, _, err := q.selectSlot("home")
	require.NoError(t, err)
	assert.Equal(t, "SELECT content FROM vault_slots WHERE name = $1", query)

	query, _, err = q.upsertSlot("home", "data", time.Now())
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES ($1,$2,$3)")
}
