package entitlement

import (
	"testing"
	"time"

	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quotaNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestTrackQuota(t *testing.T) {
	tests := []struct {
		name        string
		used, limit int
		remaining   int
		percent     int
	}{
		{"fresh month", 0, 10, 10, 0},
		{"half used", 5, 10, 5, 50},
		{"exhausted", 10, 10, 0, 100},
		{"overdrawn reports zero remaining", 12, 10, 0, 100},
		{"rounds percentage half up", 1, 3, 2, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrackQuota(tt.used, tt.limit, quotaNow)
			require.NoError(t, err)
			assert.Equal(t, tt.remaining, got.Remaining)
			assert.Equal(t, tt.percent, got.PercentUsed)
			assert.False(t, got.Unlimited)
		})
	}
}

func TestTrackQuotaUnlimited(t *testing.T) {
	got, err := TrackQuota(42, UnlimitedLimit, quotaNow)
	require.NoError(t, err)
	assert.True(t, got.Unlimited)
	assert.Equal(t, 0, got.PercentUsed)
	assert.Equal(t, 42, got.Used)
}

func TestTrackQuotaInvalidState(t *testing.T) {
	_, err := TrackQuota(-1, 10, quotaNow)
	assert.True(t, domain.IsInvalidQuotaState(err))

	_, err = TrackQuota(5, 0, quotaNow)
	assert.True(t, domain.IsInvalidQuotaState(err))

	_, err = TrackQuota(5, -3, quotaNow)
	assert.True(t, domain.IsInvalidQuotaState(err))
}

func TestTrackQuotaResetDate(t *testing.T) {
	got, err := TrackQuota(0, 10, quotaNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got.ResetDate)

	// December rolls into January of the next year.
	dec := time.Date(2026, 12, 20, 8, 0, 0, 0, time.UTC)
	got, err = TrackQuota(0, 10, dec)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), got.ResetDate)
}

func TestQuotaInvariantRemainingPlusUsed(t *testing.T) {
	for used := 0; used <= 15; used++ {
		got, err := TrackQuota(used, 10, quotaNow)
		require.NoError(t, err)
		cappedUsed := used
		if cappedUsed > 10 {
			cappedUsed = 10
		}
		assert.Equal(t, 10, got.Remaining+cappedUsed)
		assert.GreaterOrEqual(t, got.Remaining, 0)
	}
}
