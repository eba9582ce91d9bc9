package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/migrations"
)

// NewConnectPostgres connects to the PostgreSQL server at cfg.DSN through
// the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, connection{
		driver:     "pgx",
		dsn:        cfg.DSN,
		dialect:    migrations.DialectPostgres,
		maxOpen:    2,
		classifier: NewPostgresErrorClassifier(),
	}, log)
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not a
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification]. Connection
// exceptions (class 08) and transaction rollbacks (class 40, including
// serialization failures and deadlocks) are retried, as are a few server
// states that clear by themselves. Constraint violations, syntax errors and
// data exceptions are not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	if pgerrcode.IsConnectionException(code) || pgerrcode.IsTransactionRollback(code) {
		return Retryable
	}

	switch code {
	case pgerrcode.CannotConnectNow,
		pgerrcode.TooManyConnections,
		pgerrcode.LockNotAvailable:
		return Retryable
	}
	return NonRetryable
}
