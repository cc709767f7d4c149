package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsAndAs(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		target  error
		message string
	}{
		{"not found", NotFound("recipe", int64(7)), ErrNotFound, "recipe not found with id 7"},
		{"validation", ValidationFailed("ingredients", "ingredients are required"), ErrValidation, "ingredients are required"},
		{"conflict", Conflict("recipe is already in favorites"), ErrConflict, "recipe is already in favorites"},
		{"forbidden", Forbidden("only the author can edit a recipe"), ErrForbidden, "only the author can edit a recipe"},
		{"unauthorized", Unauthorized("invalid email or password"), ErrUnauthorized, "invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service call: %w", tt.err)

			assert.True(t, errors.Is(wrapped, tt.target))

			var appErr *AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestValidationFailed_Field(t *testing.T) {
	err := ValidationFailed("image", "image is required")
	assert.Equal(t, "image", err.Field)
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFoundMessage("not subscribed to this author")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "not subscribed to this author", err.Error())
	assert.Empty(t, err.Field)
}
