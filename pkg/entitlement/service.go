package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
)

// Service handles persisted entitlement bookkeeping: monthly project quotas
// and subscription consultation credits.
type Service struct {
	db *ent.Client
}

// NewService creates a new entitlement service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// PlanAllotment returns the consultation credit allotment for a plan and
// whether the plan is unlimited.
func PlanAllotment(plan string) (int, bool) {
	switch plan {
	case "starter":
		return 2, false
	case "growth":
		return 6, false
	case "enterprise":
		return 0, true
	default:
		return 0, false
	}
}

// ActiveSubscription returns the user's single active subscription, or a
// not-found domain error when there is none.
func (s *Service) ActiveSubscription(ctx context.Context, userID int) (*ent.Subscription, error) {
	sub, err := s.db.Subscription.Query().
		Where(
			subscription.UserIDEQ(userID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		Order(ent.Desc(subscription.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("active subscription")
		}
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}
	return sub, nil
}

// CreditBalance computes the user's current credit position from the active
// subscription.
func (s *Service) CreditBalance(ctx context.Context, userID int) (*CreditBalance, error) {
	sub, err := s.ActiveSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Balance(sub.CreditAllotment, sub.UsedCredits, sub.IsUnlimited)
}

// ConsumeCredit atomically consumes one consultation credit from the active
// subscription. Uses a transaction so concurrent bookings cannot overdraw;
// the balance invariant is enforced at write time.
func (s *Service) ConsumeCredit(ctx context.Context, userID int) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	sub, err := tx.Subscription.Query().
		Where(
			subscription.UserIDEQ(userID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		Order(ent.Desc(subscription.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			err = domain.NewNotFoundError("active subscription")
			return err
		}
		return fmt.Errorf("failed to query subscription: %w", err)
	}

	balance, err := Balance(sub.CreditAllotment, sub.UsedCredits, sub.IsUnlimited)
	if err != nil {
		return err
	}

	if err = balance.Consume(); err != nil {
		// Insufficient credits; nothing written, balance unchanged.
		return err
	}

	_, err = tx.Subscription.UpdateOneID(sub.ID).
		SetUsedCredits(balance.UsedCredits).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume credit: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.CreditsConsumed.Inc()
	return nil
}

// CheckAndIncrementProjectUsage checks the user's monthly project quota and
// increments usage. Usage resets on the first submission of a new calendar
// month.
func (s *Service) CheckAndIncrementProjectUsage(ctx context.Context, userID int, now time.Time) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	u, err := tx.User.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	used := u.ProjectsUsed
	if !sameMonth(u.LastResetAt, now) {
		used = 0
		u, err = tx.User.UpdateOneID(userID).
			SetProjectsUsed(0).
			SetLastResetAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset usage: %w", err)
		}
	}

	if used+1 > u.MonthlyProjectLimit {
		err = domain.NewForbiddenError(fmt.Sprintf("monthly project limit reached: %d/%d used", used, u.MonthlyProjectLimit))
		return err
	}

	_, err = tx.User.UpdateOneID(userID).
		SetProjectsUsed(used + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Quota returns the user's monthly project quota status at the given
// instant.
func (s *Service) Quota(ctx context.Context, userID int, now time.Time) (*QuotaStatus, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	used := u.ProjectsUsed
	if !sameMonth(u.LastResetAt, now) {
		used = 0
	}

	return TrackQuota(used, u.MonthlyProjectLimit, now)
}

// ResetAllMonthlyUsage zeroes the monthly counter for every user. Called by
// the monthly cron job.
func (s *Service) ResetAllMonthlyUsage(ctx context.Context, now time.Time) (int, error) {
	n, err := s.db.User.Update().
		SetProjectsUsed(0).
		SetLastResetAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly usage: %w", err)
	}
	return n, nil
}

func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.UTC().Date()
	by, bm, _ := b.UTC().Date()
	return ay == by && am == bm
}
