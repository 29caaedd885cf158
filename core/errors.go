package core

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for comparison using errors.Is()
// These are generic errors that can be wrapped with additional context
var (
	// Storage-related errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrConnectionFailed   = errors.New("connection failed")
	ErrCorruptRecord      = errors.New("corrupt persisted record")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMissingConfiguration = errors.New("missing required configuration")
)

// StoreError provides structured error information with context
// It implements the error interface and supports error wrapping
type StoreError struct {
	Op      string // Operation that failed (e.g., "cart.Add")
	Kind    string // Error kind (e.g., "storage", "codec", "config")
	Key     string // Storage key involved, if any
	Message string // Human-readable message
	Err     error  // Underlying error for wrapping
}

// Error returns the string representation of the error
func (e *StoreError) Error() string {
	if e.Op != "" && e.Err != nil {
		if e.Key != "" {
			return fmt.Sprintf("%s [%s]: %v", e.Op, e.Key, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying error for use with errors.Is/As
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(op, kind string, err error) *StoreError {
	return &StoreError{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// IsStorageUnavailable checks if an error means the backing storage could
// not be reached or refused the write. This is the only realistic I/O
// failure the stores can encounter and the one callers should surface.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable) ||
		errors.Is(err, ErrConnectionFailed)
}

// IsCorruptRecord checks if an error came from decoding a persisted blob
// whose shape no longer matches the store's record type. There is no
// migration path for the persisted blobs; clearing the key is the remedy.
func IsCorruptRecord(err error) bool {
	return errors.Is(err, ErrCorruptRecord)
}

// IsConfigurationError checks if an error is configuration-related
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrMissingConfiguration)
}
