package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError(0)
	assert.True(t, IsInsufficientCredits(err))
	assert.Equal(t, ErrCodeInsufficientCredits, GetErrorCode(err))
	assert.Contains(t, err.Error(), "upgrade your plan")
}

func TestInvalidQuotaStateError(t *testing.T) {
	err := NewInvalidQuotaStateError("limit must be positive")
	assert.True(t, IsInvalidQuotaState(err))
	assert.False(t, IsInsufficientCredits(err))
}

func TestInvalidPricingInputError(t *testing.T) {
	err := NewInvalidPricingInputError("base rate must be positive")
	assert.True(t, IsInvalidPricingInput(err))
	assert.Equal(t, ErrCodeInvalidPricingInput, GetErrorCode(err))
}

func TestSourceUnavailableWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSourceUnavailableError("subscriptions", cause)
	assert.True(t, IsSourceUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "subscriptions")
}

func TestGetErrorCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain error")))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("consultation")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "consultation not found")
}
