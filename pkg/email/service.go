package email

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
)

// DeliveryRecorder appends delivery outcomes to the notification log.
type DeliveryRecorder interface {
	Record(ctx context.Context, typ notificationlog.Type, emailSent bool, recipient, sender, details string) error
}

// Service handles email sending. Every attempt, successful or not, is
// recorded in the notification log.
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
	recorder    DeliveryRecorder
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails are sent via SendGrid; otherwise
// they are logged to console (development mode).
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string, recorder DeliveryRecorder) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
		recorder:    recorder,
	}
}

// SendVerificationEmail sends an email verification link.
func (s *Service) SendVerificationEmail(ctx context.Context, toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email/%s", s.baseURL, token)

	subject := "Verify your ChainAdvisory account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to ChainAdvisory!</h2>
			<p>Hi %s,</p>
			<p>Thank you for registering with ChainAdvisory. Please verify your email address by clicking the button below:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Verify Email</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link will expire in 24 hours.</strong></p>
			<p>If you didn't create an account, you can safely ignore this email.</p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, verificationURL, verificationURL, verificationURL)

	plainText := fmt.Sprintf(`
Hi %s,

Welcome to ChainAdvisory! Please verify your email address by clicking the link below:

%s

This link will expire in 24 hours.

If you didn't create an account, you can safely ignore this email.

Thanks,
The ChainAdvisory Team
	`, toName, verificationURL)

	return s.deliver(ctx, notificationlog.TypeEmailVerification, toEmail, toName, subject, body, plainText)
}

// SendPasswordResetEmail sends a password reset link.
func (s *Service) SendPasswordResetEmail(ctx context.Context, toEmail, toName, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)

	subject := "Reset your ChainAdvisory password"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>Hi %s,</p>
			<p>We received a request to reset your password for your ChainAdvisory account.</p>
			<p>Click the button below to reset your password:</p>
			<p><a href="%s" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset Password</a></p>
			<p><strong>This link will expire in 1 hour.</strong></p>
			<p>If you didn't request a password reset, you can safely ignore this email. Your password will remain unchanged.</p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, resetURL)

	plainText := fmt.Sprintf(`
Hi %s,

We received a request to reset your password for your ChainAdvisory account.

Click the link below to reset your password:

%s

This link will expire in 1 hour.

If you didn't request a password reset, you can safely ignore this email.
Your password will remain unchanged.

Thanks,
The ChainAdvisory Team
	`, toName, resetURL)

	return s.deliver(ctx, notificationlog.TypePasswordReset, toEmail, toName, subject, body, plainText)
}

// SendConsultationConfirmation confirms a booked consultation.
func (s *Service) SendConsultationConfirmation(ctx context.Context, toEmail, toName, serviceType string, scheduledAt time.Time, priceCents int) error {
	subject := "Your ChainAdvisory consultation is booked"
	when := scheduledAt.Format("Monday, January 2 2006 at 15:04 MST")
	price := fmt.Sprintf("$%.2f", float64(priceCents)/100)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Consultation Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> consultation is booked for <strong>%s</strong>.</p>
			<p>Total: <strong>%s</strong> (one subscription credit was used)</p>
			<p><a href="%s/dashboard/consultations" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Booking</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, serviceType, when, price, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s consultation is booked for %s.

Total: %s (one subscription credit was used)

Manage your booking: %s/dashboard/consultations

Thanks,
The ChainAdvisory Team
	`, toName, serviceType, when, price, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeConsultationConfirmation, toEmail, toName, subject, body, plainText)
}

// SendConsultationReminder reminds about an upcoming session.
func (s *Service) SendConsultationReminder(ctx context.Context, toEmail, toName, serviceType string, scheduledAt time.Time) error {
	subject := "Reminder: your ChainAdvisory consultation is coming up"
	when := scheduledAt.Format("Monday, January 2 2006 at 15:04 MST")

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Consultation Reminder</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> consultation starts on <strong>%s</strong>.</p>
			<p><a href="%s/dashboard/consultations">View booking details</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, serviceType, when, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s consultation starts on %s.

View booking details: %s/dashboard/consultations

Thanks,
The ChainAdvisory Team
	`, toName, serviceType, when, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeConsultationReminder, toEmail, toName, subject, body, plainText)
}

// SendReportReady notifies that a requested report was delivered.
func (s *Service) SendReportReady(ctx context.Context, toEmail, toName, reportType string) error {
	subject := "Your ChainAdvisory report is ready"

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Report Ready</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> report has been delivered and is ready for download.</p>
			<p><a href="%s/dashboard/reports" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Download Report</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, reportType, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s report has been delivered and is ready for download.

Download it here: %s/dashboard/reports

Thanks,
The ChainAdvisory Team
	`, toName, reportType, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeReportReady, toEmail, toName, subject, body, plainText)
}

// SendSubscriptionActivated welcomes a new subscriber.
func (s *Service) SendSubscriptionActivated(ctx context.Context, toEmail, toName, plan string) error {
	subject := fmt.Sprintf("Your ChainAdvisory %s plan is active", plan)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Active</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> plan is now active. Your consultation credits are ready to use.</p>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, plan, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s plan is now active. Your consultation credits are ready to use.

Visit your dashboard: %s/dashboard

Thanks,
The ChainAdvisory Team
	`, toName, plan, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeSubscriptionActivated, toEmail, toName, subject, body, plainText)
}

// SendSubscriptionExpiring warns that the current period is ending soon.
func (s *Service) SendSubscriptionExpiring(ctx context.Context, toEmail, toName, plan string, daysLeft int) error {
	subject := fmt.Sprintf("Your ChainAdvisory %s plan renews in %d day(s)", plan, daysLeft)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Renewal Coming Up</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> plan renews in <strong>%d day(s)</strong>. Unused consultation credits do not carry over between periods.</p>
			<p><a href="%s/dashboard/billing">Manage your subscription</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, plan, daysLeft, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s plan renews in %d day(s). Unused consultation credits do not carry over between periods.

Manage your subscription: %s/dashboard/billing

Thanks,
The ChainAdvisory Team
	`, toName, plan, daysLeft, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeSubscriptionExpiring, toEmail, toName, subject, body, plainText)
}

// SendSubscriptionCancelled confirms a cancellation.
func (s *Service) SendSubscriptionCancelled(ctx context.Context, toEmail, toName, plan string, periodEnd time.Time) error {
	subject := "Your ChainAdvisory subscription has been cancelled"
	until := periodEnd.Format("January 2, 2006")

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> plan has been cancelled. You keep access until <strong>%s</strong>.</p>
			<p>Changed your mind? <a href="%s/pricing">Resubscribe any time</a>.</p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, plan, until, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s plan has been cancelled. You keep access until %s.

Changed your mind? Resubscribe any time: %s/pricing

Thanks,
The ChainAdvisory Team
	`, toName, plan, until, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeSubscriptionCancelled, toEmail, toName, subject, body, plainText)
}

// SendPaymentFailed warns that an invoice could not be collected.
func (s *Service) SendPaymentFailed(ctx context.Context, toEmail, toName, plan string) error {
	subject := "Payment failed for your ChainAdvisory subscription"

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Failed</h2>
			<p>Hi %s,</p>
			<p>We could not collect payment for your <strong>%s</strong> plan. Please update your payment method to keep your subscription active.</p>
			<p><a href="%s/dashboard/billing" style="background-color: #F44336; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Update Payment Method</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, plan, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

We could not collect payment for your %s plan. Please update your payment
method to keep your subscription active.

Update it here: %s/dashboard/billing

Thanks,
The ChainAdvisory Team
	`, toName, plan, s.baseURL)

	return s.deliver(ctx, notificationlog.TypePaymentFailed, toEmail, toName, subject, body, plainText)
}

// SendExpertApplicationUpdate notifies an applicant about a review decision.
func (s *Service) SendExpertApplicationUpdate(ctx context.Context, toEmail, toName, status string) error {
	subject := "Update on your ChainAdvisory expert application"

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Expert Application Update</h2>
			<p>Hi %s,</p>
			<p>Your expert application status is now: <strong>%s</strong>.</p>
			<p><a href="%s/dashboard/expert">View your application</a></p>
			<p>Thanks,<br>The ChainAdvisory Team</p>
		</body>
		</html>
	`, toName, status, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your expert application status is now: %s.

View your application: %s/dashboard/expert

Thanks,
The ChainAdvisory Team
	`, toName, status, s.baseURL)

	return s.deliver(ctx, notificationlog.TypeExpertApplicationUpdate, toEmail, toName, subject, body, plainText)
}

// deliver sends the email and records the outcome in the notification log.
func (s *Service) deliver(ctx context.Context, typ notificationlog.Type, toEmail, toName, subject, htmlBody, plainTextBody string) error {
	var sendErr error
	if s.useSendGrid {
		sendErr = s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	} else {
		sendErr = s.logEmailToConsole(toEmail, toName, subject)
	}

	outcome := "sent"
	if sendErr != nil {
		outcome = "failed"
	}
	metrics.EmailsSent.WithLabelValues(string(typ), outcome).Inc()

	details := subject
	if sendErr != nil {
		details = fmt.Sprintf("%s: %v", subject, sendErr)
	}
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, typ, sendErr == nil, toEmail, s.fromEmail, details); err != nil {
			log.Printf("❌ failed to record notification: %v", err)
		}
	}
	return sendErr
}

// sendViaSendGrid sends email using the SendGrid API.
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode).
func (s *Service) logEmailToConsole(toEmail, toName, subject string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}
