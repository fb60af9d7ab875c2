package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap(cause, "Failed to save data.")
	require.Error(t, err)

	appErr := GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to save data.", appErr.Message)
	assert.Equal(t, "connection refused", appErr.Detail())
	assert.ErrorIs(t, err, cause)
}

func TestWrapKeepsAppError(t *testing.T) {
	notFound := NewNotFoundError("Entry not found.")

	err := Wrap(fmt.Errorf("lookup: %w", notFound), "Failed to update entry.")

	appErr := GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Entry not found.", appErr.Detail())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "unused"))
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("sampleUnits", "Sample units must be a valid number greater than 0.")

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Sample units must be a valid number greater than 0.", err.Error())
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "sampleUnits", err.Errors[0].Field)
}

func TestGetAppErrorPlainError(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Detail())
}
