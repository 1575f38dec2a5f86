package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
)

func newMockKVStore(t *testing.T) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewSQLKeyValueStore(&DB{DB: db, dialect: DialectSQLite, logger: l}, l), mock
}

func TestSQLKeyValueStore_Get(t *testing.T) {
	selectQuery := regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = ?")

	t.Run("found", func(t *testing.T) {
		kv, mock := newMockKVStore(t)
		mock.ExpectQuery(selectQuery).
			WithArgs(KeyAuthToken).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))

		value, found, err := kv.Get(context.Background(), KeyAuthToken)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "tok", value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		kv, mock := newMockKVStore(t)
		mock.ExpectQuery(selectQuery).
			WithArgs(KeyAuthToken).
			WillReturnError(sql.ErrNoRows)

		value, found, err := kv.Get(context.Background(), KeyAuthToken)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("driver error", func(t *testing.T) {
		kv, mock := newMockKVStore(t)
		mock.ExpectQuery(selectQuery).
			WithArgs(KeyAuthToken).
			WillReturnError(errors.New("disk I/O error"))

		_, found, err := kv.Get(context.Background(), KeyAuthToken)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadingKey)
		assert.False(t, found)
	})
}

func TestSQLKeyValueStore_Set(t *testing.T) {
	kv, mock := newMockKVStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP) ON CONFLICT (key) DO UPDATE")).
		WithArgs(KeyHasSeenOnboarding, "true").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), KeyHasSeenOnboarding, "true"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyValueStore_SetError(t *testing.T) {
	kv, mock := newMockKVStore(t)
	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(errors.New("database is locked"))

	err := kv.Set(context.Background(), KeyHasSeenOnboarding, "true")
	assert.ErrorIs(t, err, ErrWritingKey)
}

func TestSQLKeyValueStore_Remove(t *testing.T) {
	kv, mock := newMockKVStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key = ?")).
		WithArgs(KeyAuthUser).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Remove(context.Background(), KeyAuthUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyValueStore_RemoveError(t *testing.T) {
	kv, mock := newMockKVStore(t)
	mock.ExpectExec("DELETE FROM kv_store").
		WillReturnError(errors.New("database is locked"))

	err := kv.Remove(context.Background(), KeyAuthUser)
	assert.ErrorIs(t, err, ErrRemovingKey)
}

func TestSQLKeyValueStore_PostgresPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	l := logger.Nop()
	kv := NewSQLKeyValueStore(&DB{DB: db, dialect: DialectPostgres, logger: l}, l)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs(KeyAuthToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))

	_, found, err := kv.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	storages, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	kv := storages.KeyValue
	_, found, err := kv.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, KeyAuthToken, "first"))
	require.NoError(t, kv.Set(ctx, KeyAuthToken, "second"))

	value, found, err := kv.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)

	require.NoError(t, kv.Remove(ctx, KeyAuthToken))
	require.NoError(t, kv.Remove(ctx, KeyAuthToken))
	require.NoError(t, storages.Close())

	// values survive a restart
	storages, err = NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.KeyValue.Set(ctx, KeyHasSeenOnboarding, "true"))
	require.NoError(t, storages.Close())

	storages, err = NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	value, found, err = storages.KeyValue.Get(ctx, KeyHasSeenOnboarding)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
	_, found, err = storages.KeyValue.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientStorages_Memory(t *testing.T) {
	storages, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	_, ok := storages.KeyValue.(*MemoryKeyValueStore)
	assert.True(t, ok)
	require.NoError(t, storages.Close())

	var nilStorages *ClientStorages
	assert.NoError(t, nilStorages.Close())
}
