package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testThresholds() []Threshold {
	return []Threshold{
		{Tier: TierBasic, MinPoints: 0, MonthlyProjectLimit: 3},
		{Tier: TierVerified, MinPoints: 100, MonthlyProjectLimit: 10},
		{Tier: TierPremium, MinPoints: 500, MonthlyProjectLimit: 25},
	}
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		name         string
		points       int
		wantTier     string
		wantNext     string
		wantProgress int
	}{
		{"zero points", 0, TierBasic, TierVerified, 0},
		{"mid basic", 50, TierBasic, TierVerified, 50},
		{"exact threshold belongs to higher tier", 100, TierVerified, TierPremium, 0},
		{"after achievement award", 150, TierVerified, TierPremium, 13},
		{"top of ladder", 500, TierPremium, NextTierMax, 100},
		{"beyond top threshold", 9999, TierPremium, NextTierMax, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTier(tt.points, testThresholds())
			assert.Equal(t, tt.wantTier, got.CurrentTier)
			assert.Equal(t, tt.wantNext, got.NextTier)
			assert.Equal(t, tt.wantProgress, got.ProgressPercent)
		})
	}
}

func TestResolveTierProgressBounds(t *testing.T) {
	for points := 0; points <= 600; points += 7 {
		got := ResolveTier(points, testThresholds())
		assert.GreaterOrEqual(t, got.ProgressPercent, 0, "points=%d", points)
		assert.LessOrEqual(t, got.ProgressPercent, 100, "points=%d", points)
		assert.NotEmpty(t, got.CurrentTier, "points=%d", points)
	}
}

func TestResolveTierNegativePointsClampToZero(t *testing.T) {
	got := ResolveTier(-10, testThresholds())
	assert.Equal(t, TierBasic, got.CurrentTier)
	assert.Equal(t, 0, got.CurrentPoints)
}

func TestResolveTierUnsortedInput(t *testing.T) {
	shuffled := []Threshold{
		{Tier: TierPremium, MinPoints: 500, MonthlyProjectLimit: 25},
		{Tier: TierBasic, MinPoints: 0, MonthlyProjectLimit: 3},
		{Tier: TierVerified, MinPoints: 100, MonthlyProjectLimit: 10},
	}
	got := ResolveTier(150, shuffled)
	assert.Equal(t, TierVerified, got.CurrentTier)
	assert.Equal(t, TierPremium, got.NextTier)
}

func TestLimitForTier(t *testing.T) {
	assert.Equal(t, 10, LimitForTier(TierVerified, testThresholds()))
	assert.Equal(t, 3, LimitForTier("unknown", testThresholds()))
}

func TestDefaultThresholdsAscending(t *testing.T) {
	ths := DefaultThresholds()
	for i := 1; i < len(ths); i++ {
		assert.Greater(t, ths[i].MinPoints, ths[i-1].MinPoints)
	}
	assert.Equal(t, 0, ths[0].MinPoints)
}

func TestResolveTierEmptyThresholds(t *testing.T) {
	got := ResolveTier(0, nil)
	assert.Equal(t, TierBasic, got.CurrentTier)
	assert.Equal(t, TierVerified, got.NextTier)

	got = ResolveTier(20000, []Threshold{})
	assert.Equal(t, TierEcosystemPartner, got.CurrentTier)
	assert.Equal(t, NextTierMax, got.NextTier)
	assert.Equal(t, 100, got.ProgressPercent)
}
