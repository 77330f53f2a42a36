package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/notifications"
)

// Mailer is the subset of the email service the scheduler needs.
type Mailer interface {
	SendSubscriptionExpiring(ctx context.Context, toEmail, toName, plan string, daysLeft int) error
	SendConsultationReminder(ctx context.Context, toEmail, toName, serviceType string, scheduledAt time.Time) error
}

// Backupper runs a database backup and returns its storage location.
type Backupper interface {
	Run(ctx context.Context) (string, error)
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron          *cron.Cron
	db            *ent.Client
	entitlement   *entitlement.Service
	notifications *notifications.Service
	mailer        Mailer
	backup        Backupper
	logger        *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, ent *entitlement.Service, notif *notifications.Service, mailer Mailer, backup Backupper, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:          cron.New(),
		db:            db,
		entitlement:   ent,
		notifications: notif,
		mailer:        mailer,
		backup:        backup,
		logger:        logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 9 AM: warn users whose subscription period ends within a week
	_, err := cm.cron.AddFunc("0 9 * * *", func() {
		cm.logger.Println("🕐 Running daily expiring-subscription scan...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cm.ScanExpiringSubscriptions(ctx, time.Now()); err != nil {
			cm.logger.Printf("❌ Expiring-subscription scan failed: %v", err)
			return
		}
		cm.logger.Println("✅ Expiring-subscription scan completed")
	})
	if err != nil {
		return err
	}

	// Daily at 8 AM: remind users about consultations in the next 24 hours
	_, err = cm.cron.AddFunc("0 8 * * *", func() {
		cm.logger.Println("🕐 Running consultation reminder job...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cm.SendConsultationReminders(ctx, time.Now()); err != nil {
			cm.logger.Printf("❌ Consultation reminder job failed: %v", err)
			return
		}
		cm.logger.Println("✅ Consultation reminder job completed")
	})
	if err != nil {
		return err
	}

	// Monthly on the 1st at midnight: reset project submission quotas
	_, err = cm.cron.AddFunc("0 0 1 * *", func() {
		cm.logger.Println("🕐 Running monthly quota reset...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.entitlement.ResetAllMonthlyUsage(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Monthly quota reset failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Monthly quota reset completed: %d users reset", n)
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log the platform summary
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Logging platform statistics...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		sum, err := cm.notifications.AdminSummary(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Failed to build platform summary: %v", err)
			return
		}

		cm.logger.Printf("📊 Platform Summary:")
		cm.logger.Printf("  Notifications (24h): %d", sum.RecentNotifications)
		cm.logger.Printf("  Failed deliveries (7d): %d", sum.FailedNotifications)
		cm.logger.Printf("  Critical expirations: %d", sum.CriticalExpirations)
		cm.logger.Printf("  Urgent expirations: %d", sum.UrgentExpirations)
		cm.logger.Printf("  Expired subscriptions: %d", sum.ExpiredSubscriptions)
		cm.logger.Printf("  Suspended users: %d", sum.SuspiciousUsers)
	})
	if err != nil {
		return err
	}

	// Daily at 3 AM: database backup
	if cm.backup != nil {
		_, err = cm.cron.AddFunc("0 3 * * *", func() {
			cm.logger.Println("🕐 Running daily database backup...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()

			location, err := cm.backup.Run(ctx)
			if err != nil {
				cm.logger.Printf("❌ Backup failed: %v", err)
				return
			}
			cm.logger.Printf("✅ Backup stored at %s", location)
		})
		if err != nil {
			return err
		}
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 8 AM: Consultation reminders")
	cm.logger.Println("  - Daily at 9 AM: Expiring-subscription scan")
	cm.logger.Println("  - Monthly on the 1st: Quota reset")
	cm.logger.Println("  - Daily at 4 AM: Platform statistics")
	if cm.backup != nil {
		cm.logger.Println("  - Daily at 3 AM: Database backup")
	}

	return nil
}

// ScanExpiringSubscriptions emails every user whose active subscription
// period ends within the urgent window. Delivery outcomes land in the
// notification log via the mailer.
func (cm *CronManager) ScanExpiringSubscriptions(ctx context.Context, now time.Time) error {
	subs, err := cm.db.Subscription.Query().
		Where(
			subscription.StatusEQ(subscription.StatusActive),
			subscription.CurrentPeriodEndGT(now),
			subscription.CurrentPeriodEndLTE(now.Add(notifications.UrgentWindowDays*24*time.Hour)),
		).
		WithUser().
		All(ctx)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		u := sub.Edges.User
		if u == nil {
			continue
		}
		days := notifications.DaysRemaining(sub.CurrentPeriodEnd, now)
		if err := cm.mailer.SendSubscriptionExpiring(ctx, u.Email, u.Name, string(sub.Plan), days); err != nil {
			cm.logger.Printf("⚠️  Failed to send expiring email to %s: %v", u.Email, err)
		}
	}
	cm.logger.Printf("Scanned %d expiring subscriptions", len(subs))
	return nil
}

// SendConsultationReminders emails users with confirmed sessions starting
// within the next 24 hours.
func (cm *CronManager) SendConsultationReminders(ctx context.Context, now time.Time) error {
	sessions, err := cm.db.Consultation.Query().
		Where(
			consultation.StatusEQ(consultation.StatusConfirmed),
			consultation.ScheduledAtGT(now),
			consultation.ScheduledAtLTE(now.Add(24*time.Hour)),
		).
		WithUser().
		All(ctx)
	if err != nil {
		return err
	}

	for _, sess := range sessions {
		u := sess.Edges.User
		if u == nil {
			continue
		}
		if err := cm.mailer.SendConsultationReminder(ctx, u.Email, u.Name, string(sess.ServiceType), sess.ScheduledAt); err != nil {
			cm.logger.Printf("⚠️  Failed to send reminder to %s: %v", u.Email, err)
		}
	}
	cm.logger.Printf("Sent %d consultation reminders", len(sessions))
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
