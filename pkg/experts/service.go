package experts

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

// ApplicationInput is the payload for submitting an expert application.
type ApplicationInput struct {
	Specialization string `json:"specialization" validate:"required,min=3,max=100"`
	Motivation     string `json:"motivation" validate:"required,min=20"`
}

// ReviewInput is an admin decision payload.
type ReviewInput struct {
	Action ReviewAction `json:"action" validate:"required"`
	Notes  string       `json:"notes,omitempty"`
}

// Service handles expert applications and their admin review.
type Service struct {
	db         *ent.Client
	reputation *reputation.Service
}

// NewService creates a new expert service.
func NewService(db *ent.Client, rep *reputation.Service) *Service {
	return &Service{db: db, reputation: rep}
}

// Apply submits an expert application for the user. Only one open
// application is allowed at a time.
func (s *Service) Apply(ctx context.Context, userID int, input ApplicationInput) (*ent.ExpertApplication, error) {
	open, err := s.db.ExpertApplication.Query().
		Where(
			expertapplication.UserIDEQ(userID),
			expertapplication.VerificationStatusIn(
				expertapplication.VerificationStatusPending,
				expertapplication.VerificationStatusUnderReview,
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check open applications: %w", err)
	}
	if open {
		return nil, domain.NewConflictError("an application is already under review")
	}

	rec, err := s.reputation.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	app, err := s.db.ExpertApplication.Create().
		SetUserID(userID).
		SetSpecialization(input.Specialization).
		SetMotivation(input.Motivation).
		SetReputationPoints(rec.TotalPoints).
		SetExpertTier(TierForPoints(rec.TotalPoints)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create expert application: %w", err)
	}
	return app, nil
}

// Review applies an admin decision to an application. Verifying promotes
// the user to the expert role and refreshes the captured tier.
func (s *Service) Review(ctx context.Context, appID int, input ReviewInput, now time.Time) (*ent.ExpertApplication, error) {
	app, err := s.db.ExpertApplication.Get(ctx, appID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("expert application")
		}
		return nil, fmt.Errorf("failed to get expert application: %w", err)
	}

	next, err := NextStatus(app.VerificationStatus, input.Action)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.ExpertApplication.UpdateOneID(app.ID).
		SetVerificationStatus(next).
		SetReviewedAt(now)
	if input.Notes != "" {
		upd.SetReviewNotes(input.Notes)
	}
	if next == expertapplication.VerificationStatusVerified {
		rec, rerr := s.reputation.GetOrCreateRecord(ctx, app.UserID)
		if rerr != nil {
			err = rerr
			return nil, err
		}
		upd.SetReputationPoints(rec.TotalPoints).
			SetExpertTier(TierForPoints(rec.TotalPoints))
		if err = tx.User.UpdateOneID(app.UserID).SetRole(user.RoleExpert).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
	}

	app, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update expert application: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return app, nil
}

// Get returns an application, enforcing ownership for non-admin callers.
func (s *Service) Get(ctx context.Context, userID, id int, isAdmin bool) (*ent.ExpertApplication, error) {
	app, err := s.db.ExpertApplication.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("expert application")
		}
		return nil, fmt.Errorf("failed to get expert application: %w", err)
	}
	if !isAdmin && app.UserID != userID {
		return nil, domain.NewForbiddenError("application belongs to another user")
	}
	return app, nil
}

// ListPending returns applications awaiting review, oldest first so the
// queue is worked in order.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]*ent.ExpertApplication, error) {
	items, err := s.db.ExpertApplication.Query().
		Where(expertapplication.VerificationStatusIn(
			expertapplication.VerificationStatusPending,
			expertapplication.VerificationStatusUnderReview,
		)).
		Order(ent.Asc(expertapplication.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expert applications: %w", err)
	}
	return items, nil
}

// UpdateAccuracy records a verified expert's rolling evaluation accuracy.
func (s *Service) UpdateAccuracy(ctx context.Context, userID int, accuracy float64) error {
	n, err := s.db.ExpertApplication.Update().
		Where(
			expertapplication.UserIDEQ(userID),
			expertapplication.VerificationStatusEQ(expertapplication.VerificationStatusVerified),
		).
		SetAccuracyRate(accuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update accuracy: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("verified expert")
	}
	return nil
}
