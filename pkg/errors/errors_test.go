package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewCatalogLoadError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CATALOG_LOAD")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIsBatchFatal(t *testing.T) {
	assert.True(t, IsBatchFatal(NewCatalogLoadError(errors.New("scan failed"))))
	assert.False(t, IsBatchFatal(NewPersistenceError(errors.New("update failed"))))
	assert.False(t, IsBatchFatal(NewMalformedEventError("no user id")))
	assert.False(t, IsBatchFatal(errors.New("plain error")))
}

func TestIsRecordSkippable(t *testing.T) {
	assert.True(t, IsRecordSkippable(NewMalformedEventError("no answers")))
	assert.True(t, IsRecordSkippable(NewPersistenceError(errors.New("throttled"))))
	assert.False(t, IsRecordSkippable(NewCatalogLoadError(errors.New("scan failed"))))
	assert.False(t, IsRecordSkippable(errors.New("plain error")))
}

func TestTypeOf_WrappedChain(t *testing.T) {
	err := fmt.Errorf("processing record: %w", NewPersistenceError(errors.New("boom")))
	assert.Equal(t, ErrorTypePersistence, TypeOf(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("profile")))
	assert.False(t, IsNotFound(NewValidationError("bad input")))
}
