package core

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// It is the default backend for tests and for demo runs that do not need
// state to survive the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	store  map[string]string
	logger Logger
}

// NewMemoryStorage creates a new in-memory storage backend
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		store:  make(map[string]string),
		logger: &NoOpLogger{},
	}
}

// SetLogger configures the logger for this storage backend
func (m *MemoryStorage) SetLogger(logger Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Get retrieves a value. A missing key yields an empty string, not an
// error; absence is an ordinary condition for the stores built on top.
func (m *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.store[key]
	if !exists {
		if m.logger != nil {
			m.logger.Debug("Storage miss", map[string]interface{}{
				"operation": "storage_get",
				"key":       key,
				"result":    "miss",
			})
		}
		return "", nil
	}

	if m.logger != nil {
		m.logger.Debug("Storage hit", map[string]interface{}{
			"operation": "storage_get",
			"key":       key,
			"result":    "hit",
		})
	}

	return value, nil
}

// Set stores a value under a key, replacing any previous value
func (m *MemoryStorage) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.logger != nil {
		m.logger.Debug("Storage set", map[string]interface{}{
			"operation":  "storage_set",
			"key":        key,
			"value_size": len(value),
		})
	}

	m.store[key] = value
	return nil
}

// Delete removes a value
func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, existed := m.store[key]
	delete(m.store, key)

	if m.logger != nil {
		m.logger.Debug("Storage delete", map[string]interface{}{
			"operation": "storage_delete",
			"key":       key,
			"existed":   existed,
		})
	}

	return nil
}

// Exists checks if a key exists
func (m *MemoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.store[key]
	return exists, nil
}
