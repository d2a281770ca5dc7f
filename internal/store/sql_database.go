package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/migrations"
)

// DB is a pooled database handle bound to one SQL dialect.
//
// builder renders squirrel queries with the placeholder format of that
// dialect; isUniqueViolation recognizes the dialect's unique-constraint error.
type DB struct {
	*sql.DB
	dialect           string
	builder           sq.StatementBuilderType
	isUniqueViolation func(err error) bool
	logger            *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.isUniqueViolation = isPostgresUniqueViolation
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.isUniqueViolation = isSQLiteUniqueViolation
	}

	return db
}

// Migrate applies the embedded schema for the dialect of db.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Dialect returns the database/sql driver name db was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// greatest returns the SQL function that picks the larger of its arguments.
func (db *DB) greatest() string {
	if db.dialect == migrations.DialectPostgres {
		return "GREATEST"
	}
	return "MAX"
}

// toMicros converts t to the integer representation stored in timestamp
// columns.
func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}
