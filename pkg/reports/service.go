package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	"github.com/chainadvisory/chainadvisory-api/pkg/pricing"
)

// RequestInput is the validated payload for requesting a report.
type RequestInput struct {
	ReportType string `json:"report_type" validate:"required,oneof=advisory_notes market_analysis audit_summary tokenomics_review"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Brief      string `json:"brief,omitempty"`
}

// Service handles report requests and delivery lifecycle.
type Service struct {
	db *ent.Client
}

// NewService creates a new report service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Quote prices a report request. Same centralized calculation as every
// other booking flow; priority drives the multiplier.
func Quote(reportType, priority string) (int, error) {
	dollars, err := pricing.ForReport(pricing.ReportRate(reportType), priority)
	if err != nil {
		return 0, err
	}
	return dollars * 100, nil
}

// Request creates a report request in requested state.
func (s *Service) Request(ctx context.Context, userID int, input RequestInput) (*ent.Report, error) {
	priority := input.Priority
	if priority == "" {
		priority = "low"
	}

	priceCents, err := Quote(input.ReportType, priority)
	if err != nil {
		return nil, err
	}

	r, err := s.db.Report.Create().
		SetUserID(userID).
		SetReportType(report.ReportType(input.ReportType)).
		SetPriority(report.Priority(priority)).
		SetPriceCents(priceCents).
		SetBrief(input.Brief).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}
	metrics.ReportsRequested.WithLabelValues(input.ReportType).Inc()
	return r, nil
}

// Get returns a report request, enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, id int) (*ent.Report, error) {
	r, err := s.db.Report.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("report")
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if r.UserID != userID {
		return nil, domain.NewForbiddenError("report belongs to another user")
	}
	return r, nil
}

// ListForUser returns the user's report requests, newest first.
func (s *Service) ListForUser(ctx context.Context, userID, limit, offset int) ([]*ent.Report, error) {
	items, err := s.db.Report.Query().
		Where(report.UserIDEQ(userID)).
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return items, nil
}

// Start moves a requested report to in_progress. Admin-only transition.
func (s *Service) Start(ctx context.Context, id int) (*ent.Report, error) {
	return s.transition(ctx, id, report.StatusRequested, report.StatusInProgress, nil)
}

// Deliver marks a report delivered and stamps the delivery time.
func (s *Service) Deliver(ctx context.Context, id int, now time.Time) (*ent.Report, error) {
	return s.transition(ctx, id, report.StatusInProgress, report.StatusDelivered, &now)
}

// Cancel cancels a report that has not been delivered.
func (s *Service) Cancel(ctx context.Context, userID, id int) (*ent.Report, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if r.Status == report.StatusDelivered || r.Status == report.StatusCancelled {
		return nil, domain.NewConflictError(fmt.Sprintf("cannot cancel a %s report", r.Status))
	}
	r, err = r.Update().SetStatus(report.StatusCancelled).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel report: %w", err)
	}
	return r, nil
}

// MarkPaid records checkout completion reported by the payment processor.
func (s *Service) MarkPaid(ctx context.Context, id int) error {
	err := s.db.Report.UpdateOneID(id).SetPaid(true).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("report")
		}
		return fmt.Errorf("failed to mark report paid: %w", err)
	}
	return nil
}

func (s *Service) transition(ctx context.Context, id int, from, to report.Status, deliveredAt *time.Time) (*ent.Report, error) {
	r, err := s.db.Report.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("report")
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if r.Status != from {
		return nil, domain.NewConflictError(fmt.Sprintf("report is %s, expected %s", r.Status, from))
	}
	upd := r.Update().SetStatus(to)
	if deliveredAt != nil {
		upd.SetDeliveredAt(*deliveredAt)
	}
	r, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return r, nil
}
