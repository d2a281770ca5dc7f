package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
)

// Storages groups all repositories over one shared connection pool.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a connection of the configured driver (SQLite or PostgreSQL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories over the shared pool.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
		db:                   db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
