// Package store implements the persistence layer of the attendance service:
// the credential store (user repository) and the append-only attendance
// ledger (attendance repository), both running over database/sql with either
// a PostgreSQL or a SQLite backend selected by the configured DSN.
package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/migrations"
	"github.com/Masterminds/squirrel"
)

// ErrorClassificator translates driver-specific errors into backend-neutral
// answers the repositories can act on. Each supported backend provides its
// own implementation.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a violated
	// UNIQUE constraint (duplicate username, duplicate user-date mark).
	IsUniqueViolation(err error) bool
}

// DB wraps a database/sql handle together with the pieces that differ per
// backend: the goose dialect used for migrations, the squirrel statement
// builder with the right placeholder format, and the error classificator.
type DB struct {
	*sql.DB

	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured DSN. A DSN with
// a "postgres://" or "postgresql://" scheme connects to PostgreSQL via pgx;
// any other non-empty DSN is treated as the path of a local SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
