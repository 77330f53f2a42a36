package reports

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"

	_ "github.com/mattn/go-sqlite3"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name       string
		reportType string
		priority   string
		expected   int
	}{
		{"medium priority advisory notes", "advisory_notes", "medium", 96000},
		{"low priority advisory notes", "advisory_notes", "low", 80000},
		{"high priority market analysis", "market_analysis", "high", 90000},
		{"low priority audit summary", "audit_summary", "low", 100000},
		{"medium priority tokenomics review", "tokenomics_review", "medium", 90000},
		{"empty priority defaults to low", "market_analysis", "", 60000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := Quote(tt.reportType, tt.priority)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestQuoteRejectsUnknownInput(t *testing.T) {
	_, err := Quote("weather_forecast", "low")
	assert.True(t, domain.IsInvalidPricingInput(err), "unknown report type has no base rate")

	_, err = Quote("audit_summary", "apocalyptic")
	assert.True(t, domain.IsInvalidPricingInput(err), "unknown priority has no multiplier")
}

func TestRequestCreatesReport(t *testing.T) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	defer client.Close()
	service := NewService(client)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("client@example.com").
		SetPasswordHash("x").
		SetName("Test Client").
		Save(ctx)
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.ReportsRequested.WithLabelValues("market_analysis"))

	r, err := service.Request(ctx, u.ID, RequestInput{
		ReportType: "market_analysis",
		Priority:   "high",
		Brief:      "Competitive landscape for L2 rollups.",
	})
	require.NoError(t, err)
	assert.Equal(t, report.StatusRequested, r.Status)
	assert.Equal(t, 90000, r.PriceCents)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReportsRequested.WithLabelValues("market_analysis")))
}

func TestRequestRejectsUnknownType(t *testing.T) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	defer client.Close()
	service := NewService(client)

	_, err := service.Request(context.Background(), 1, RequestInput{ReportType: "weather_forecast"})
	assert.True(t, domain.IsInvalidPricingInput(err))
}
