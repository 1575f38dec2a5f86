package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
)

// MemoryDSN selects the process-local key-value store.
const MemoryDSN = ":memory:"

// ClientStorages groups the client-side storage used by the session core.
type ClientStorages struct {
	// KeyValue is the persisted key-value store shared by the onboarding
	// gate and the session store.
	KeyValue KeyValueStore

	closer func() error
}

// NewClientStorages initialises the client storage layer:
//  1. For the ":memory:" DSN a [MemoryKeyValueStore] is returned.
//  2. Otherwise the SQLite file at cfg.DB.DSN is opened (created when
//     missing), migrated, and wrapped in a key-value store.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating client storages...")

	if cfg.DB.DSN == MemoryDSN {
		mem := NewMemoryKeyValueStore()
		return &ClientStorages{KeyValue: mem, closer: mem.Close}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValue: NewSQLKeyValueStore(db, logger),
		closer:   db.Close,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
