package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsagePriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		percent  int
		expected string
	}{
		{"eighty percent is high", 80, PriorityHigh},
		{"ninety four percent is high", 94, PriorityHigh},
		{"ninety five percent is urgent", 95, PriorityUrgent},
		{"full quota is urgent", 100, PriorityUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{
				Usage: &UsageState{UserID: 7, Used: tt.percent, Limit: 100, PercentUsed: tt.percent},
			}
			out := Generate(snap, now)
			require.Len(t, out, 1)
			assert.Equal(t, "quota_usage-7", out[0].ID)
			assert.Equal(t, tt.expected, out[0].Priority)
		})
	}
}

func TestGenerateUsageBelowThreshold(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Usage: &UsageState{UserID: 7, Used: 7, Limit: 10, PercentUsed: 70},
	}
	assert.Empty(t, Generate(snap, now))
}

func TestGenerateUnlimitedUsageSilent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Usage: &UsageState{UserID: 7, Used: 300, Limit: -1, Unlimited: true, PercentUsed: 0},
	}
	assert.Empty(t, Generate(snap, now))
}

func TestGenerateRenewalWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		emitted  bool
		priority string
	}{
		{"eight days out is silent", 8, false, ""},
		{"seven days out is medium", 7, true, PriorityMedium},
		{"four days out is medium", 4, true, PriorityMedium},
		{"three days out escalates to high", 3, true, PriorityHigh},
		{"one day out is high", 1, true, PriorityHigh},
		{"already ended is silent", 0, false, ""},
		{"expired is silent", -2, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{
				Subscription: &SubscriptionState{ID: 3, Plan: "growth", PeriodEnd: now.AddDate(0, 0, tt.days)},
			}
			out := Generate(snap, now)
			if !tt.emitted {
				assert.Empty(t, out)
				return
			}
			require.Len(t, out, 1)
			assert.Equal(t, "subscription_renewal-3", out[0].ID)
			assert.Equal(t, tt.priority, out[0].Priority)
		})
	}
}

func TestGenerateSessionNotifications(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Sessions: []SessionState{
			{ID: 1, ServiceType: "advisory", Status: "confirmed", ScheduledAt: now.Add(3 * time.Hour)},
			{ID: 2, ServiceType: "due_diligence", Status: "confirmed", ScheduledAt: now.Add(48 * time.Hour)},
			{ID: 3, ServiceType: "tokenomics", Status: "pending", ScheduledAt: now.Add(72 * time.Hour)},
			{ID: 4, ServiceType: "advisory", Status: "cancelled", ScheduledAt: now.Add(2 * time.Hour)},
		},
	}

	out := Generate(snap, now)
	require.Len(t, out, 2)

	assert.Equal(t, "session_reminder-1", out[0].ID)
	assert.Equal(t, PriorityHigh, out[0].Priority)
	assert.Equal(t, "session_pending-3", out[1].ID)
	assert.Equal(t, PriorityMedium, out[1].Priority)
}

func TestGenerateSortOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Reports: []ReportState{
			{ID: 10, ReportType: "market_analysis", Status: "in_progress", UpdatedAt: now.Add(-1 * time.Hour)},
			{ID: 11, ReportType: "audit_summary", Status: "delivered", UpdatedAt: now.Add(-2 * time.Hour)},
			{ID: 12, ReportType: "advisory_notes", Status: "delivered", UpdatedAt: now.Add(-30 * time.Minute)},
		},
		Usage: &UsageState{UserID: 7, Used: 96, Limit: 100, PercentUsed: 96},
	}

	out := Generate(snap, now)
	require.Len(t, out, 4)

	assert.Equal(t, PriorityUrgent, out[0].Priority)
	assert.Equal(t, "report_ready-12", out[1].ID, "newer delivered report sorts first within equal priority")
	assert.Equal(t, "report_ready-11", out[2].ID)
	assert.Equal(t, "report_in_progress-10", out[3].ID)
}

func TestGenerateIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Sessions: []SessionState{
			{ID: 1, ServiceType: "advisory", Status: "confirmed", ScheduledAt: now.Add(5 * time.Hour)},
		},
		Reports: []ReportState{
			{ID: 2, ReportType: "audit_summary", Status: "delivered", UpdatedAt: now.Add(-1 * time.Hour)},
		},
		Subscription: &SubscriptionState{ID: 3, Plan: "starter", PeriodEnd: now.AddDate(0, 0, 5)},
		Usage:        &UsageState{UserID: 4, Used: 9, Limit: 10, PercentUsed: 90},
	}

	first := Generate(snap, now)
	second := Generate(snap, now)

	assert.Equal(t, first, second)
	seen := map[string]bool{}
	for _, n := range first {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestGenerateEmptySnapshot(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Empty(t, Generate(Snapshot{}, now))
}
