package consultations

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	"github.com/chainadvisory/chainadvisory-api/pkg/phone"
	"github.com/chainadvisory/chainadvisory-api/pkg/pricing"
)

// BookingInput is the validated payload for creating a consultation.
type BookingInput struct {
	ServiceType     string    `json:"service_type" validate:"required,oneof=due_diligence advisory tokenomics security_review"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,oneof=30 45 60"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	CountryCode     string    `json:"country_code,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// Service handles consultation booking and lifecycle.
type Service struct {
	db      *ent.Client
	credits *entitlement.Service
}

// NewService creates a new consultation service.
func NewService(db *ent.Client, credits *entitlement.Service) *Service {
	return &Service{db: db, credits: credits}
}

// Quote prices a booking without creating it. Every booking flow goes
// through the same calculation so two forms can never disagree on price.
func Quote(serviceType string, durationMinutes int) (int, error) {
	dollars, err := pricing.ForConsultation(pricing.ConsultationRate(serviceType), durationMinutes)
	if err != nil {
		return 0, err
	}
	return dollars * 100, nil
}

// Book validates the input, consumes one subscription credit, and creates
// the consultation in pending state.
func (s *Service) Book(ctx context.Context, userID int, input BookingInput, now time.Time) (*ent.Consultation, error) {
	if !input.ScheduledAt.After(now) {
		return nil, domain.NewValidationError("scheduled time must be in the future")
	}

	normalizedPhone := ""
	if input.ContactPhone != "" {
		var err error
		normalizedPhone, err = phone.NormalizePhone(input.ContactPhone, input.CountryCode)
		if err != nil {
			return nil, domain.NewValidationError("invalid contact phone")
		}
	}

	priceCents, err := Quote(input.ServiceType, input.DurationMinutes)
	if err != nil {
		return nil, err
	}

	if err := s.credits.ConsumeCredit(ctx, userID); err != nil {
		return nil, err
	}

	c, err := s.db.Consultation.Create().
		SetUserID(userID).
		SetServiceType(consultation.ServiceType(input.ServiceType)).
		SetDurationMinutes(input.DurationMinutes).
		SetScheduledAt(input.ScheduledAt).
		SetPriceCents(priceCents).
		SetContactPhone(normalizedPhone).
		SetNotes(input.Notes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	metrics.ConsultationsBooked.Inc()
	return c, nil
}

// Get returns a consultation, enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, id int) (*ent.Consultation, error) {
	c, err := s.db.Consultation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("consultation")
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	if c.UserID != userID {
		return nil, domain.NewForbiddenError("consultation belongs to another user")
	}
	return c, nil
}

// ListForUser returns the user's consultations, newest first.
func (s *Service) ListForUser(ctx context.Context, userID, limit, offset int) ([]*ent.Consultation, error) {
	items, err := s.db.Consultation.Query().
		Where(consultation.UserIDEQ(userID)).
		Order(ent.Desc(consultation.FieldScheduledAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return items, nil
}

// Confirm moves a pending consultation to confirmed. Admin-only transition.
func (s *Service) Confirm(ctx context.Context, id int) (*ent.Consultation, error) {
	return s.transition(ctx, id, consultation.StatusPending, consultation.StatusConfirmed)
}

// Complete moves a confirmed consultation to completed.
func (s *Service) Complete(ctx context.Context, id int) (*ent.Consultation, error) {
	return s.transition(ctx, id, consultation.StatusConfirmed, consultation.StatusCompleted)
}

// Cancel cancels a consultation that has not happened yet.
func (s *Service) Cancel(ctx context.Context, userID, id int) (*ent.Consultation, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == consultation.StatusCompleted || c.Status == consultation.StatusCancelled {
		return nil, domain.NewConflictError(fmt.Sprintf("cannot cancel a %s consultation", c.Status))
	}
	c, err = c.Update().SetStatus(consultation.StatusCancelled).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel consultation: %w", err)
	}
	return c, nil
}

// MarkPaid records checkout completion reported by the payment processor.
func (s *Service) MarkPaid(ctx context.Context, id int) error {
	err := s.db.Consultation.UpdateOneID(id).SetPaid(true).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("consultation")
		}
		return fmt.Errorf("failed to mark consultation paid: %w", err)
	}
	return nil
}

func (s *Service) transition(ctx context.Context, id int, from, to consultation.Status) (*ent.Consultation, error) {
	c, err := s.db.Consultation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("consultation")
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	if c.Status != from {
		return nil, domain.NewConflictError(fmt.Sprintf("consultation is %s, expected %s", c.Status, from))
	}
	c, err = c.Update().SetStatus(to).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}
	return c, nil
}
