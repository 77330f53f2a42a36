package entitlement

import (
	"testing"

	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	b, err := Balance(5, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 3, b.RemainingCredits)
	assert.Equal(t, 2, b.UsedCredits)
	assert.False(t, b.IsUnlimited)

	// Invariant: remaining + used == allotment
	assert.Equal(t, 5, b.RemainingCredits+b.UsedCredits)
}

func TestBalanceUnlimited(t *testing.T) {
	b, err := Balance(0, 17, true)
	require.NoError(t, err)
	assert.True(t, b.IsUnlimited)
	assert.True(t, b.CanConsume())
}

func TestBalanceInvalidInput(t *testing.T) {
	_, err := Balance(5, -1, false)
	assert.True(t, domain.IsInvalidQuotaState(err))

	_, err = Balance(-1, 0, false)
	assert.True(t, domain.IsInvalidQuotaState(err))
}

func TestBalanceOverconsumedCaps(t *testing.T) {
	b, err := Balance(3, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 0, b.RemainingCredits)
	assert.Equal(t, 3, b.UsedCredits)
}

func TestConsume(t *testing.T) {
	b, err := Balance(2, 0, false)
	require.NoError(t, err)

	require.NoError(t, b.Consume())
	require.NoError(t, b.Consume())
	assert.Equal(t, 0, b.RemainingCredits)
	assert.Equal(t, 2, b.UsedCredits)

	// Consuming past zero fails and leaves the balance unchanged.
	err = b.Consume()
	assert.True(t, domain.IsInsufficientCredits(err))
	assert.Equal(t, 0, b.RemainingCredits)
	assert.Equal(t, 2, b.UsedCredits)

	// Failure is idempotent.
	err = b.Consume()
	assert.True(t, domain.IsInsufficientCredits(err))
	assert.Equal(t, 2, b.UsedCredits)
}

func TestConsumeUnlimited(t *testing.T) {
	b, err := Balance(0, 0, true)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, b.Consume())
	}
	assert.Equal(t, 100, b.UsedCredits)
}

func TestPlanAllotment(t *testing.T) {
	tests := []struct {
		plan      string
		credits   int
		unlimited bool
	}{
		{"starter", 2, false},
		{"growth", 6, false},
		{"enterprise", 0, true},
		{"unknown", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			credits, unlimited := PlanAllotment(tt.plan)
			assert.Equal(t, tt.credits, credits)
			assert.Equal(t, tt.unlimited, unlimited)
		})
	}
}
