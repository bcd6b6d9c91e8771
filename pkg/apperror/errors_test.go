package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorPassesAppErrorsThrough(t *testing.T) {
	err := NewConflictError("Email already registered")
	appErr := FromError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Equal(t, "Email already registered", appErr.Message)

	wrapped := fmt.Errorf("register: %w", NewNotFoundError("Premise"))
	appErr = FromError(wrapped)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Premise not found", appErr.Message)
}

func TestFromErrorHidesInternalDetails(t *testing.T) {
	appErr := FromError(errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.NotContains(t, appErr.Message, "connection refused")
}

func TestValidationErrorCarriesFieldErrors(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "quantity", Message: "Quantity must be greater than zero"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "quantity", err.Errors[0].Field)
}
