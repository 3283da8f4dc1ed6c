package errors

import (
	"errors"
	"fmt"
)

// StorageError represents any failure raised by the persistence layer
// (connectivity loss, write failure, read failure).
type StorageError struct {
	Op  string // accessor operation, e.g. "create" or "find_all"
	Err error  // driver error, kept unchanged
}

// NewStorageError wraps a driver error raised while running op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage %s failed", e.Op)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped driver error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err, or any error it wraps, is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
