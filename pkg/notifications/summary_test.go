package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		periodEnd time.Time
		expected  int
	}{
		{"exactly seven days", now.AddDate(0, 0, 7), 7},
		{"partial day rounds up", now.Add(25 * time.Hour), 2},
		{"under one day", now.Add(6 * time.Hour), 1},
		{"same instant", now, 0},
		{"one day past", now.AddDate(0, 0, -1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysRemaining(tt.periodEnd, now))
		})
	}
}

func TestSummarizeExpirationBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		critical int
		urgent   int
		expired  int
	}{
		{"seven days is urgent not critical", 7, 0, 1, 0},
		{"four days is urgent", 4, 0, 1, 0},
		{"three days is critical not urgent", 3, 1, 0, 0},
		{"zero days is critical", 0, 1, 0, 0},
		{"minus one day is expired", -1, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := []ExpiringSubscription{
				{SubscriptionID: 1, UserID: 1, PeriodEnd: now.AddDate(0, 0, tt.days)},
			}
			sum := Summarize(nil, subs, 0, now)
			assert.Equal(t, tt.critical, sum.CriticalExpirations)
			assert.Equal(t, tt.urgent, sum.UrgentExpirations)
			assert.Equal(t, tt.expired, sum.ExpiredSubscriptions)
		})
	}
}

func TestSummarizeNotificationWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	logs := []LogEntry{
		{Type: "report_ready", EmailSent: true, CreatedAt: now.Add(-2 * time.Hour)},
		{Type: "subscription_expiring", EmailSent: false, CreatedAt: now.Add(-12 * time.Hour)},
		{Type: "payment_failed", EmailSent: false, CreatedAt: now.AddDate(0, 0, -5)},
		{Type: "email_verification", EmailSent: false, CreatedAt: now.AddDate(0, 0, -10)},
		{Type: "password_reset", EmailSent: true, CreatedAt: now.AddDate(0, 0, -2)},
	}

	sum := Summarize(logs, nil, 3, now)

	assert.Equal(t, 2, sum.RecentNotifications)
	assert.Equal(t, 2, sum.FailedNotifications, "failures older than seven days are excluded")
	assert.Equal(t, 3, sum.SuspiciousUsers)
}

func TestSummarizeIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	logs := []LogEntry{
		{Type: "report_ready", EmailSent: false, CreatedAt: now.Add(-3 * time.Hour)},
	}
	subs := []ExpiringSubscription{
		{SubscriptionID: 1, UserID: 1, PeriodEnd: now.AddDate(0, 0, 2)},
		{SubscriptionID: 2, UserID: 2, PeriodEnd: now.AddDate(0, 0, 6)},
	}

	first := Summarize(logs, subs, 1, now)
	second := Summarize(logs, subs, 1, now)

	assert.Equal(t, first, second)
}
