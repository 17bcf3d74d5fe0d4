package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/migrations"
)

// DB is a *sql.DB bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs op and, if it fails with an error the dialect classifies as
// [Retryable], runs it exactly once more.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	if db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
		return err
	}

	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "*DB.withRetry").
		Str("dialect", db.dialect).
		Msg("retrying transient database error")

	return op()
}
