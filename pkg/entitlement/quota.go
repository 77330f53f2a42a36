package entitlement

import (
	"math"
	"time"

	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

// UnlimitedLimit marks a quota with no monthly cap.
const UnlimitedLimit = -1

// QuotaStatus describes monthly quota consumption at an instant.
type QuotaStatus struct {
	Used        int       `json:"used"`
	Limit       int       `json:"limit"`
	Unlimited   bool      `json:"unlimited"`
	Remaining   int       `json:"remaining"`
	PercentUsed int       `json:"percent_used"`
	ResetDate   time.Time `json:"reset_date"`
}

// TrackQuota computes remaining quota and the next reset date. The limit is
// either a positive integer or UnlimitedLimit; anything else is an invalid
// quota state and is rejected rather than coerced into a bogus percentage.
// The evaluation instant is explicit for testability.
func TrackQuota(used, limit int, now time.Time) (*QuotaStatus, error) {
	if used < 0 {
		return nil, domain.NewInvalidQuotaStateError("used count cannot be negative")
	}

	reset := firstOfNextMonth(now)

	if limit == UnlimitedLimit {
		return &QuotaStatus{
			Used:        used,
			Limit:       UnlimitedLimit,
			Unlimited:   true,
			Remaining:   math.MaxInt,
			PercentUsed: 0,
			ResetDate:   reset,
		}, nil
	}

	if limit <= 0 {
		return nil, domain.NewInvalidQuotaStateError("limit must be positive or unlimited")
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	percent := int(math.Floor(100*float64(used)/float64(limit) + 0.5))
	if percent > 100 {
		percent = 100
	}

	return &QuotaStatus{
		Used:        used,
		Limit:       limit,
		Remaining:   remaining,
		PercentUsed: percent,
		ResetDate:   reset,
	}, nil
}

// firstOfNextMonth returns midnight UTC on the first day of the month after
// the given instant.
func firstOfNextMonth(now time.Time) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
