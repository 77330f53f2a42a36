package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForActivity(t *testing.T) {
	tests := []struct {
		name                          string
		submitted, completed, highRat int
		want                          int
	}{
		{"no activity", 0, 0, 0, 0},
		{"one submission", 1, 0, 0, 10},
		{"submission and completion", 1, 1, 0, 35},
		{"full cycle with high rating", 1, 1, 1, 40},
		{"several projects", 4, 3, 2, 125},
		{"negative counts clamp to zero", -2, -1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsForActivity(tt.submitted, tt.completed, tt.highRat)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(99))
	assert.Equal(t, 2, LevelForPoints(100))
	assert.Equal(t, 6, LevelForPoints(550))
	assert.Equal(t, 1, LevelForPoints(-5))
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, float64(0), CompletionRate(0, 0))
	assert.Equal(t, float64(50), CompletionRate(4, 2))
	assert.Equal(t, float64(100), CompletionRate(3, 3))
	// Completed can never exceed submitted.
	assert.Equal(t, float64(100), CompletionRate(3, 5))
	assert.Equal(t, 33.33, CompletionRate(3, 1))
}
