package store

import (
	"context"
	"sync"
)

// MemoryKeyValueStore is a process-local [KeyValueStore]. It backs the
// ":memory:" DSN and is handy as a real store in tests.
type MemoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryKeyValueStore returns an empty [MemoryKeyValueStore].
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: make(map[string]string)}
}

func (m *MemoryKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrStoreClosed
	}

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}

	m.values[key] = value
	return nil
}

func (m *MemoryKeyValueStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}

	delete(m.values, key)
	return nil
}

// Close makes every later call fail with [ErrStoreClosed].
func (m *MemoryKeyValueStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
