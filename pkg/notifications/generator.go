package notifications

import (
	"fmt"
	"sort"
	"time"
)

// Notification priorities, weakest first.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Usage thresholds that escalate the quota notification.
const (
	usageHighPercent   = 80
	usageUrgentPercent = 95
)

var priorityRank = map[string]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Notification is a dashboard alert projected from a user's current state.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionState is the slice of a consultation the generator reads.
type SessionState struct {
	ID          int
	ServiceType string
	Status      string
	ScheduledAt time.Time
}

// ReportState is the slice of a report request the generator reads.
type ReportState struct {
	ID         int
	ReportType string
	Status     string
	UpdatedAt  time.Time
}

// SubscriptionState carries the renewal data the generator reads.
type SubscriptionState struct {
	ID        int
	Plan      string
	PeriodEnd time.Time
}

// UsageState carries the monthly quota counters the generator reads.
type UsageState struct {
	UserID      int
	Used        int
	Limit       int
	Unlimited   bool
	PercentUsed int
}

// Snapshot is everything the generator projects notifications from. A source
// that could not be fetched is left at its zero value and simply contributes
// nothing.
type Snapshot struct {
	Sessions     []SessionState
	Reports      []ReportState
	Subscription *SubscriptionState
	Usage        *UsageState
}

// Generate projects dashboard notifications from a snapshot at an instant.
// It is a pure function: ids are derived from the source entity and type, so
// regenerating from the same snapshot yields the same ordered list. Sorting
// is by descending priority, then descending creation time, then id so ties
// stay stable.
func Generate(snap Snapshot, now time.Time) []Notification {
	var out []Notification

	for _, s := range snap.Sessions {
		if n, ok := sessionNotification(s, now); ok {
			out = append(out, n)
		}
	}
	for _, r := range snap.Reports {
		if n, ok := reportNotification(r); ok {
			out = append(out, n)
		}
	}
	if snap.Subscription != nil {
		if n, ok := renewalNotification(*snap.Subscription, now); ok {
			out = append(out, n)
		}
	}
	if snap.Usage != nil {
		if n, ok := usageNotification(*snap.Usage, now); ok {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityRank[out[i].Priority], priorityRank[out[j].Priority]
		if pi != pj {
			return pi > pj
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func sessionNotification(s SessionState, now time.Time) (Notification, bool) {
	switch s.Status {
	case "pending":
		return Notification{
			ID:        notificationID("session_pending", s.ID),
			Type:      "session_pending",
			Title:     "Consultation awaiting confirmation",
			Message:   fmt.Sprintf("Your %s consultation is awaiting confirmation", s.ServiceType),
			Priority:  PriorityMedium,
			CreatedAt: s.ScheduledAt,
		}, true
	case "confirmed":
		until := s.ScheduledAt.Sub(now)
		if until <= 0 || until > 24*time.Hour {
			return Notification{}, false
		}
		return Notification{
			ID:        notificationID("session_reminder", s.ID),
			Type:      "session_reminder",
			Title:     "Upcoming consultation",
			Message:   fmt.Sprintf("Your %s consultation starts at %s", s.ServiceType, s.ScheduledAt.Format(time.RFC1123)),
			Priority:  PriorityHigh,
			CreatedAt: s.ScheduledAt,
		}, true
	default:
		return Notification{}, false
	}
}

func reportNotification(r ReportState) (Notification, bool) {
	switch r.Status {
	case "delivered":
		return Notification{
			ID:        notificationID("report_ready", r.ID),
			Type:      "report_ready",
			Title:     "Report ready",
			Message:   fmt.Sprintf("Your %s report is ready for download", r.ReportType),
			Priority:  PriorityMedium,
			CreatedAt: r.UpdatedAt,
		}, true
	case "in_progress":
		return Notification{
			ID:        notificationID("report_in_progress", r.ID),
			Type:      "report_in_progress",
			Title:     "Report in progress",
			Message:   fmt.Sprintf("Your %s report is being prepared", r.ReportType),
			Priority:  PriorityLow,
			CreatedAt: r.UpdatedAt,
		}, true
	default:
		return Notification{}, false
	}
}

func renewalNotification(sub SubscriptionState, now time.Time) (Notification, bool) {
	days := DaysRemaining(sub.PeriodEnd, now)
	if days <= 0 || days > UrgentWindowDays {
		return Notification{}, false
	}
	priority := PriorityMedium
	if days <= CriticalWindowDays {
		priority = PriorityHigh
	}
	return Notification{
		ID:        notificationID("subscription_renewal", sub.ID),
		Type:      "subscription_renewal",
		Title:     "Subscription renewal",
		Message:   fmt.Sprintf("Your %s plan renews in %d day(s)", sub.Plan, days),
		Priority:  priority,
		CreatedAt: sub.PeriodEnd.AddDate(0, 0, -UrgentWindowDays),
	}, true
}

func usageNotification(u UsageState, now time.Time) (Notification, bool) {
	if u.Unlimited || u.PercentUsed < usageHighPercent {
		return Notification{}, false
	}
	priority := PriorityHigh
	if u.PercentUsed >= usageUrgentPercent {
		priority = PriorityUrgent
	}
	return Notification{
		ID:        notificationID("quota_usage", u.UserID),
		Type:      "quota_usage",
		Title:     "Monthly quota almost used",
		Message:   fmt.Sprintf("You have used %d of %d project submissions this month", u.Used, u.Limit),
		Priority:  priority,
		CreatedAt: now.Truncate(time.Hour),
	}, true
}

func notificationID(typ string, entityID int) string {
	return fmt.Sprintf("%s-%d", typ, entityID)
}
