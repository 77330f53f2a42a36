package notifications

import (
	"math"
	"time"
)

// Urgency bucket boundaries in days remaining. Buckets are inclusive on the
// lower bound and exclusive on the upper so no expiration is double-counted:
// expired < 0 ≤ critical ≤ 3 < urgent ≤ 7.
const (
	CriticalWindowDays = 3
	UrgentWindowDays   = 7

	recentWindow = 24 * time.Hour
	failedWindow = 7 * 24 * time.Hour
)

// LogEntry is the slice of a notification log row the aggregator needs.
type LogEntry struct {
	Type      string
	EmailSent bool
	CreatedAt time.Time
}

// ExpiringSubscription pairs a subscription with its period end.
type ExpiringSubscription struct {
	SubscriptionID int
	UserID         int
	PeriodEnd      time.Time
}

// Summary holds the admin dashboard counts.
type Summary struct {
	RecentNotifications  int `json:"recent_notifications"`
	FailedNotifications  int `json:"failed_notifications"`
	CriticalExpirations  int `json:"critical_expirations"`
	UrgentExpirations    int `json:"urgent_expirations"`
	ExpiredSubscriptions int `json:"expired_subscriptions"`
	SuspiciousUsers      int `json:"suspicious_users"`
}

// DaysRemaining returns the whole days until periodEnd, rounding partial
// days up. A period ending in the past yields a negative count.
func DaysRemaining(periodEnd, now time.Time) int {
	return int(math.Ceil(periodEnd.Sub(now).Hours() / 24))
}

// Summarize buckets notification history and subscription expirations at an
// instant. The aggregation is read-only and idempotent: the same snapshot
// always yields the same counts.
func Summarize(logs []LogEntry, subs []ExpiringSubscription, suspiciousUsers int, now time.Time) Summary {
	sum := Summary{SuspiciousUsers: suspiciousUsers}

	for _, entry := range logs {
		age := now.Sub(entry.CreatedAt)
		if age < 0 {
			continue
		}
		if age <= recentWindow {
			sum.RecentNotifications++
		}
		if !entry.EmailSent && age <= failedWindow {
			sum.FailedNotifications++
		}
	}

	for _, sub := range subs {
		days := DaysRemaining(sub.PeriodEnd, now)
		switch {
		case days < 0:
			sum.ExpiredSubscriptions++
		case days <= CriticalWindowDays:
			sum.CriticalExpirations++
		case days <= UrgentWindowDays:
			sum.UrgentExpirations++
		}
	}

	return sum
}
