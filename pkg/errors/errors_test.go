package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	clone := Clone(ErrValidation, "month must be between 1 and 12")

	assert.Equal(t, "month must be between 1 and 12", clone.Message)
	assert.Equal(t, ErrValidation.Message, "validation failed")
	assert.True(t, errors.Is(clone, ErrValidation))
	assert.False(t, errors.Is(clone, ErrNotFound))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, FromError(wrapped).Status)

	plain := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.EqualError(t, plain, "internal server error: boom")
}
