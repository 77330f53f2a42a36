package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/logger"
)

const dashboardHistoryLimit = 10

// Service reads notification history and projects dashboard alerts.
type Service struct {
	db          *ent.Client
	entitlement *entitlement.Service
	log         logger.Logger
}

// NewService creates a new notification service.
func NewService(db *ent.Client, ent *entitlement.Service, log logger.Logger) *Service {
	return &Service{db: db, entitlement: ent, log: log}
}

// Record appends a delivery attempt to the notification log. The log is
// append-only; rows are never updated.
func (s *Service) Record(ctx context.Context, typ notificationlog.Type, emailSent bool, recipient, sender, details string) error {
	_, err := s.db.NotificationLog.Create().
		SetType(typ).
		SetEmailSent(emailSent).
		SetRecipient(recipient).
		SetSender(sender).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

// History returns the most recent log entries for a recipient.
func (s *Service) History(ctx context.Context, recipient string, limit int) ([]*ent.NotificationLog, error) {
	logs, err := s.db.NotificationLog.Query().
		Where(notificationlog.RecipientEQ(recipient)).
		Order(ent.Desc(notificationlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification log: %w", err)
	}
	return logs, nil
}

// AdminSummary aggregates delivery history and upcoming subscription
// expirations for the admin dashboard.
func (s *Service) AdminSummary(ctx context.Context, now time.Time) (*Summary, error) {
	rows, err := s.db.NotificationLog.Query().
		Where(notificationlog.CreatedAtGTE(now.Add(-failedWindow))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification log: %w", err)
	}
	logs := make([]LogEntry, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, LogEntry{
			Type:      string(row.Type),
			EmailSent: row.EmailSent,
			CreatedAt: row.CreatedAt,
		})
	}

	expiring, err := s.db.Subscription.Query().
		Where(
			subscription.StatusEQ(subscription.StatusActive),
			subscription.CurrentPeriodEndLTE(now.Add(UrgentWindowDays*24*time.Hour)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring subscriptions: %w", err)
	}
	subs := make([]ExpiringSubscription, 0, len(expiring))
	for _, sub := range expiring {
		subs = append(subs, ExpiringSubscription{
			SubscriptionID: sub.ID,
			UserID:         sub.UserID,
			PeriodEnd:      sub.CurrentPeriodEnd,
		})
	}

	suspicious, err := s.db.User.Query().
		Where(user.StatusEQ(user.StatusSuspended)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count suspended users: %w", err)
	}

	sum := Summarize(logs, subs, suspicious, now)
	return &sum, nil
}

// Dashboard builds the current notification list for a user. Each source is
// fetched concurrently and is best-effort: a failing source degrades to an
// empty section instead of failing the whole dashboard.
func (s *Service) Dashboard(ctx context.Context, userID int, now time.Time) ([]Notification, error) {
	var (
		wg   sync.WaitGroup
		snap Snapshot
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		sessions, err := s.recentSessions(ctx, userID)
		if err != nil {
			s.log.Warn("dashboard source unavailable", "source", "sessions", "user_id", userID, "error", err)
			return
		}
		snap.Sessions = sessions
	}()
	go func() {
		defer wg.Done()
		reports, err := s.recentReports(ctx, userID)
		if err != nil {
			s.log.Warn("dashboard source unavailable", "source", "reports", "user_id", userID, "error", err)
			return
		}
		snap.Reports = reports
	}()
	go func() {
		defer wg.Done()
		sub, err := s.entitlement.ActiveSubscription(ctx, userID)
		if err != nil {
			if !domain.IsNotFound(err) {
				s.log.Warn("dashboard source unavailable", "source", "subscription", "user_id", userID, "error", err)
			}
			return
		}
		snap.Subscription = &SubscriptionState{
			ID:        sub.ID,
			Plan:      string(sub.Plan),
			PeriodEnd: sub.CurrentPeriodEnd,
		}
	}()
	go func() {
		defer wg.Done()
		quota, err := s.entitlement.Quota(ctx, userID, now)
		if err != nil {
			s.log.Warn("dashboard source unavailable", "source", "usage", "user_id", userID, "error", err)
			return
		}
		snap.Usage = &UsageState{
			UserID:      userID,
			Used:        quota.Used,
			Limit:       quota.Limit,
			Unlimited:   quota.Unlimited,
			PercentUsed: quota.PercentUsed,
		}
	}()
	wg.Wait()

	return Generate(snap, now), nil
}

func (s *Service) recentSessions(ctx context.Context, userID int) ([]SessionState, error) {
	rows, err := s.db.Consultation.Query().
		Where(consultation.UserIDEQ(userID)).
		Order(ent.Desc(consultation.FieldScheduledAt)).
		Limit(dashboardHistoryLimit).
		All(ctx)
	if err != nil {
		return nil, domain.NewSourceUnavailableError("sessions", err)
	}
	out := make([]SessionState, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionState{
			ID:          row.ID,
			ServiceType: string(row.ServiceType),
			Status:      string(row.Status),
			ScheduledAt: row.ScheduledAt,
		})
	}
	return out, nil
}

func (s *Service) recentReports(ctx context.Context, userID int) ([]ReportState, error) {
	rows, err := s.db.Report.Query().
		Where(report.UserIDEQ(userID)).
		Order(ent.Desc(report.FieldUpdatedAt)).
		Limit(dashboardHistoryLimit).
		All(ctx)
	if err != nil {
		return nil, domain.NewSourceUnavailableError("reports", err)
	}
	out := make([]ReportState, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReportState{
			ID:         row.ID,
			ReportType: string(row.ReportType),
			Status:     string(row.Status),
			UpdatedAt:  row.UpdatedAt,
		})
	}
	return out, nil
}
