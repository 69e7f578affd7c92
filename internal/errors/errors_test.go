package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "workclock-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestInvalidTimeZoneError(t *testing.T) {
	err := apperrors.NewInvalidTimeZoneError("America/Atlantis")

	assert.EqualError(t, err, `invalid time zone "America/Atlantis"`)
	assert.True(t, apperrors.IsInvalidTimeZone(err))
	assert.True(t, errors.Is(err, &apperrors.InvalidTimeZoneError{}))
	assert.True(t, errors.Is(err, &apperrors.InvalidTimeZoneError{Zone: "America/Atlantis"}))
	assert.False(t, errors.Is(err, &apperrors.InvalidTimeZoneError{Zone: "UTC"}))
}

func TestNotFoundError(t *testing.T) {
	assert.EqualError(t, apperrors.ErrOverrideNotFound, "user override not found")
	assert.True(t, apperrors.IsNotFound(apperrors.ErrOverrideNotFound))
	assert.True(t, errors.Is(apperrors.NewNotFoundError("user override"), apperrors.ErrOverrideNotFound))
	assert.False(t, errors.Is(apperrors.ErrPersonNotFound, apperrors.ErrOverrideNotFound))
}

func TestNotFoundErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading view: %w", apperrors.ErrPersonNotFound)
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, apperrors.ErrPersonNotFound))
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("pageSize", "must be at least 1")
	assert.EqualError(t, err, "validation error: pageSize - must be at least 1")
	assert.True(t, apperrors.IsValidation(err))

	bare := apperrors.NewValidationError("", "bad request")
	assert.EqualError(t, bare, "validation error: bad request")
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewPersistenceError("save", cause)

	assert.EqualError(t, err, "persistence save failed: connection refused")
	assert.True(t, apperrors.IsPersistence(err))
	assert.True(t, errors.Is(err, cause))
}

func TestSentinels(t *testing.T) {
	assert.False(t, apperrors.IsNotFound(apperrors.ErrMalformedPreferences))
	assert.False(t, apperrors.IsPersistence(apperrors.ErrMalformedDirectoryPayload))
	assert.NotEqual(t, apperrors.ErrInvalidSortCriteria, apperrors.ErrInvalidSortDirection)
}
