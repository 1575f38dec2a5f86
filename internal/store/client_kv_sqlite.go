package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nurse-notes/internal/logger"
)

const kvTable = "kv_store"

// sqlKeyValueStore is the database-backed implementation of
// [KeyValueStore]. Each key is a row of the kv_store table.
type sqlKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLKeyValueStore constructs a [KeyValueStore] backed by db.
func NewSQLKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Msg("creating key-value store")
	return &sqlKeyValueStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.db.builder().
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Get").Msg("error building select query")
		return "", false, fmt.Errorf("%w: %w: %w", ErrReadingKey, ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading key")
		return "", false, fmt.Errorf("%w: %w", ErrReadingKey, err)
	}

	return value, true, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.db.builder().
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w: %w", ErrWritingKey, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrWritingKey, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	query, args, err := s.db.builder().
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Remove").Msg("error building delete query")
		return fmt.Errorf("%w: %w: %w", ErrRemovingKey, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error removing key")
		return fmt.Errorf("%w: %w", ErrRemovingKey, err)
	}

	return nil
}
