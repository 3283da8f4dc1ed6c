package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError_Error(t *testing.T) {
	err := NewStorageError("create", errors.New("Database error"))
	assert.Equal(t, "storage create failed: Database error", err.Error())

	bare := NewStorageError("find_all", nil)
	assert.Equal(t, "storage find_all failed", bare.Error())
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("Database connection error")
	err := NewStorageError("find_all", cause)

	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestIsStorageError(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewStorageError("create", errors.New("boom")))

	assert.True(t, IsStorageError(err))
	assert.False(t, IsStorageError(errors.New("plain")))
	assert.False(t, IsStorageError(nil))
}
