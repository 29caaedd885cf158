package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStorage implements Storage as one file per key under a directory.
// It gives a local demo run the same reload-survival the browser's local
// storage gave the original app. Writes go through a temp file and rename
// so a crash mid-write never leaves a half-written blob behind.
type FileStorage struct {
	dir    string
	mu     sync.Mutex
	logger Logger
}

// NewFileStorage creates the backing directory if needed
func NewFileStorage(dir string) (*FileStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage directory is required: %w", ErrInvalidConfiguration)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, ErrStorageUnavailable)
	}
	return &FileStorage{dir: dir, logger: &NoOpLogger{}}, nil
}

// SetLogger configures the logger for this storage backend
func (f *FileStorage) SetLogger(logger Logger) {
	if logger != nil {
		f.logger = logger
	}
}

// path maps a key like "dc:cart" onto a filename ("dc_cart.json")
func (f *FileStorage) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(f.dir, name)
}

// Get retrieves a value. Missing files read as empty per the Storage contract.
func (f *FileStorage) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", key, ErrStorageUnavailable)
	}
	return string(data), nil
}

// Set stores a value via temp file + atomic rename
func (f *FileStorage) Set(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %q: %w", key, ErrStorageUnavailable)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrStorageUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrStorageUnavailable)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, ErrStorageUnavailable)
	}

	if f.logger != nil {
		f.logger.Debug("Storage set", map[string]interface{}{
			"operation":  "storage_set",
			"key":        key,
			"path":       target,
			"value_size": len(value),
		})
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (f *FileStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, ErrStorageUnavailable)
	}
	return nil
}

// Exists checks if a key exists
func (f *FileStorage) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := os.Stat(f.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", key, ErrStorageUnavailable)
	}
	return true, nil
}
