package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/migrations"
)

// ErrorClassification tells [DB] whether a failed statement may succeed
// when it is run again.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error a classifier does
	// not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as lock contention or a
	// dropped connection.
	Retryable
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a database handle with the dialect details the SQL storage
// needs.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	backoff            func() retry.Backoff
}

// connection describes how to open one SQL backend.
type connection struct {
	driver     string
	dsn        string
	dialect    string
	maxOpen    int
	classifier ErrorClassificator
}

// openDB opens and pings the database described by c.
func openDB(ctx context.Context, c connection, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		log.Err(err).Str("func", "store.openDB").Str("driver", c.driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", c.dialect, err)
	}
	conn.SetMaxOpenConns(c.maxOpen)
	conn.SetMaxIdleConns(c.maxOpen)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.openDB").Str("driver", c.driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting %s database: %w", c.dialect, err)
	}
	log.Debug().Str("func", "store.openDB").Str("dialect", c.dialect).Msg("connected to database")

	return &DB{
		DB:                 conn,
		dialect:            c.dialect,
		errorClassificator: c.classifier,
		logger:             log,
	}, nil
}

// Migrate brings the vault_slots schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// defaultBackoff retries transient failures three times, starting at 50ms.
func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
}

// withRetry runs op, retrying it while the classifier marks its error as
// Retryable.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := db.backoff
	if backoff == nil {
		backoff = defaultBackoff
	}

	return retry.Do(ctx, backoff(), func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
