package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
)

// Storages groups the repositories of the development Auth API server.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the server database, runs migrations and wires the
// repositories. postgres:// and postgresql:// DSNs use pgx; anything else is
// treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch dialectForDSN(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB.DSN, logger)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close closes the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
