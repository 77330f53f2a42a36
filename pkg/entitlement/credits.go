package entitlement

import "github.com/chainadvisory/chainadvisory-api/pkg/domain"

// CreditBalance is the derived credit position of a subscription period.
type CreditBalance struct {
	RemainingCredits int  `json:"remaining_credits"`
	UsedCredits      int  `json:"used_credits"`
	IsUnlimited      bool `json:"is_unlimited"`
}

// Balance computes the remaining credit position from a plan allotment and
// consumption count. When not unlimited, remaining + used always equals the
// allotment (with used capped at the allotment).
func Balance(allotment, usedCredits int, isUnlimited bool) (*CreditBalance, error) {
	if usedCredits < 0 {
		return nil, domain.NewInvalidQuotaStateError("used credits cannot be negative")
	}

	if isUnlimited {
		return &CreditBalance{
			RemainingCredits: 0,
			UsedCredits:      usedCredits,
			IsUnlimited:      true,
		}, nil
	}

	if allotment < 0 {
		return nil, domain.NewInvalidQuotaStateError("credit allotment cannot be negative")
	}

	if usedCredits > allotment {
		usedCredits = allotment
	}

	return &CreditBalance{
		RemainingCredits: allotment - usedCredits,
		UsedCredits:      usedCredits,
		IsUnlimited:      false,
	}, nil
}

// CanConsume reports whether one more credit can be consumed from the
// balance. Unlimited balances always allow consumption.
func (b *CreditBalance) CanConsume() bool {
	return b.IsUnlimited || b.RemainingCredits > 0
}

// Consume decrements the balance by one credit. A failed consume leaves the
// balance unchanged.
func (b *CreditBalance) Consume() error {
	if b.IsUnlimited {
		b.UsedCredits++
		return nil
	}
	if b.RemainingCredits <= 0 {
		return domain.NewInsufficientCreditsError(b.RemainingCredits)
	}
	b.RemainingCredits--
	b.UsedCredits++
	return nil
}
