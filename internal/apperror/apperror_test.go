package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("thread", 7), ErrNotFound},
		{"validation", ValidationFailed("title", "title is required"), ErrValidation},
		{"forbidden", Forbidden("you can only edit your own threads"), ErrForbidden},
		{"conflict", Conflict("user is already an admin"), ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestAppErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("deleting thread: %w", Forbidden("nope"))

	assert.ErrorIs(t, err, ErrForbidden)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "nope", appErr.Message)
}

func TestValidationFailedKeepsField(t *testing.T) {
	err := ValidationFailed("email", "email is required")

	assert.Equal(t, "email", err.Field)
	assert.Equal(t, "email is required", err.Error())
}
