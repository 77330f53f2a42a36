package pricing

import (
	"testing"

	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		duration float64
		priority float64
		want     int
	}{
		{"full hour no priority", 300, 1.0, 1.0, 300},
		{"half hour high priority", 400, 0.5, 1.5, 300},
		{"45 minutes rounds half up", 350, 0.75, 1.0, 263},
		{"medium priority report", 800, 1.0, 1.2, 960},
		{"half hour", 400, 0.5, 1.0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.base, tt.duration, tt.priority)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	_, err := Calculate(-100, 1.0, 1.0)
	assert.True(t, domain.IsInvalidPricingInput(err))

	_, err = Calculate(0, 1.0, 1.0)
	assert.True(t, domain.IsInvalidPricingInput(err))

	_, err = Calculate(300, 0, 1.0)
	assert.True(t, domain.IsInvalidPricingInput(err))

	_, err = Calculate(300, 1.0, -1.5)
	assert.True(t, domain.IsInvalidPricingInput(err))
}

func TestForConsultation(t *testing.T) {
	// 45-minute due diligence session at $400/hr
	price, err := ForConsultation(400, 45)
	require.NoError(t, err)
	assert.Equal(t, 300, price)

	_, err = ForConsultation(400, 90)
	assert.True(t, domain.IsInvalidPricingInput(err))
}

func TestForReport(t *testing.T) {
	// Medium-priority $800 advisory notes report
	price, err := ForReport(800, "medium")
	require.NoError(t, err)
	assert.Equal(t, 960, price)

	price, err = ForReport(600, "")
	require.NoError(t, err)
	assert.Equal(t, 600, price)

	_, err = ForReport(600, "urgent")
	assert.True(t, domain.IsInvalidPricingInput(err))
}

func TestDurationMultiplierForMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{30, 0.5},
		{45, 0.75},
		{60, 1.0},
	}
	for _, tt := range tests {
		mult, err := DurationMultiplierForMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, mult)
	}
}

func TestConsultationRateCatalog(t *testing.T) {
	assert.Equal(t, float64(400), ConsultationRate("due_diligence"))
	assert.Equal(t, float64(0), ConsultationRate("unknown"))
	assert.Equal(t, float64(800), ReportRate("advisory_notes"))
}
