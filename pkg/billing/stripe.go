package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// Mailer is the subset of the email service billing needs.
type Mailer interface {
	SendSubscriptionActivated(ctx context.Context, toEmail, toName, plan string) error
	SendSubscriptionCancelled(ctx context.Context, toEmail, toName, plan string, periodEnd time.Time) error
	SendPaymentFailed(ctx context.Context, toEmail, toName, plan string) error
}

// Service handles Stripe billing operations.
type Service struct {
	db     *ent.Client
	mailer Mailer
	config *StripeConfig
}

// StripeConfig holds Stripe configuration.
type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	PriceStarter    string
	PriceGrowth     string
	PriceEnterprise string
	SuccessURL      string
	CancelURL       string
}

// NewService creates a new billing service.
func NewService(db *ent.Client, mailer Mailer, config *StripeConfig) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:     db,
		mailer: mailer,
		config: config,
	}
}

// CreateCheckoutSession creates a Stripe checkout session for a plan.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID int, plan string) (*models.CheckoutResponse, error) {
	priceID, err := s.priceIDForPlan(plan)
	if err != nil {
		return nil, err
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID := u.StripeCustomerID
	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(u.Email),
			Name:  stripe.String(u.Name),
			Metadata: map[string]string{
				"user_id": fmt.Sprintf("%d", userID),
			},
		}
		cust, err := customer.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		customerID = cust.ID

		if err := s.db.User.UpdateOneID(userID).
			SetStripeCustomerID(customerID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to save customer ID: %w", err)
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
			"plan":    plan,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CreateCustomerPortalSession creates a Stripe customer portal session.
func (s *Service) CreateCustomerPortalSession(ctx context.Context, userID int, returnURL string) (*models.CustomerPortalResponse, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if u.StripeCustomerID == "" {
		return nil, domain.NewBadRequestError("user has no billing account yet")
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(u.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	}

	sess, err := billingportalsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &models.CustomerPortalResponse{URL: sess.URL}, nil
}

// HandleWebhook processes Stripe webhook events.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted activates the purchased plan: the previous active
// subscription (if any) is expired so exactly one stays active per user.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userIDStr, ok := sess.Metadata["user_id"]
	if !ok {
		return fmt.Errorf("user_id not found in metadata")
	}
	var userID int
	fmt.Sscanf(userIDStr, "%d", &userID)

	plan := sess.Metadata["plan"]
	allotment, unlimited := entitlement.PlanAllotment(plan)

	log.Printf("✅ Checkout completed: user_id=%d, plan=%s, subscription=%s", userID, plan, sess.Subscription.ID)

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Subscription.Update().
		Where(
			subscription.UserIDEQ(userID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		SetStatus(subscription.StatusExpired).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to expire previous subscription: %w", err)
	}

	now := time.Now()
	if _, err = tx.Subscription.Create().
		SetUserID(userID).
		SetPlan(subscription.Plan(plan)).
		SetBillingCycle(subscription.BillingCycleMonthly).
		SetPriceCents(int(sess.AmountTotal)).
		SetStatus(subscription.StatusActive).
		SetCreditAllotment(allotment).
		SetIsUnlimited(unlimited).
		SetStripeSubscriptionID(sess.Subscription.ID).
		SetCurrentPeriodStart(now).
		SetCurrentPeriodEnd(now.AddDate(0, 1, 0)).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	metrics.SubscriptionsActivated.WithLabelValues(plan).Inc()

	if u, uerr := s.db.User.Get(ctx, userID); uerr == nil && s.mailer != nil {
		if merr := s.mailer.SendSubscriptionActivated(ctx, u.Email, u.Name, plan); merr != nil {
			log.Printf("⚠️  Failed to send activation email: %v", merr)
		}
	}
	return nil
}

// handleSubscriptionUpdated syncs status and billing period from Stripe.
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("🔄 Subscription updated: %s, status=%s", sub.ID, sub.Status)

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  Subscription not found in DB: %s", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	status := entSub.Status
	switch sub.Status {
	case stripe.SubscriptionStatusActive:
		status = subscription.StatusActive
	case stripe.SubscriptionStatusCanceled:
		status = subscription.StatusCancelled
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		status = subscription.StatusPastDue
	case stripe.SubscriptionStatusTrialing:
		status = subscription.StatusTrialing
	}

	upd := s.db.Subscription.UpdateOne(entSub).
		SetStatus(status).
		SetCurrentPeriodStart(time.Unix(sub.CurrentPeriodStart, 0)).
		SetCurrentPeriodEnd(time.Unix(sub.CurrentPeriodEnd, 0)).
		SetCancelAtPeriodEnd(sub.CancelAtPeriodEnd)

	// A fresh billing period resets the credit ledger.
	if status == subscription.StatusActive && time.Unix(sub.CurrentPeriodStart, 0).After(entSub.CurrentPeriodStart) {
		upd.SetUsedCredits(0)
	}

	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

// handleSubscriptionDeleted cancels the local record.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("❌ Subscription deleted: %s", sub.ID)

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	if _, err = s.db.Subscription.UpdateOne(entSub).
		SetStatus(subscription.StatusCancelled).
		SetCancelledAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if u, uerr := s.db.User.Get(ctx, entSub.UserID); uerr == nil && s.mailer != nil {
		if merr := s.mailer.SendSubscriptionCancelled(ctx, u.Email, u.Name, string(entSub.Plan), entSub.CurrentPeriodEnd); merr != nil {
			log.Printf("⚠️  Failed to send cancellation email: %v", merr)
		}
	}
	return nil
}

// handleInvoicePaid records a successful renewal payment.
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("💰 Invoice paid: %s, amount=%d", invoice.ID, invoice.AmountPaid)

	if invoice.Subscription == nil {
		return nil
	}
	n, err := s.db.Subscription.Update().
		Where(
			subscription.StripeSubscriptionIDEQ(invoice.Subscription.ID),
			subscription.StatusEQ(subscription.StatusPastDue),
		).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reactivate subscription: %w", err)
	}
	if n > 0 {
		log.Printf("✅ Past-due subscription reactivated: %s", invoice.Subscription.ID)
	}
	return nil
}

// handleInvoicePaymentFailed flags the subscription and warns the user.
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("⚠️  Invoice payment failed: %s", invoice.ID)

	if invoice.Subscription == nil {
		return nil
	}
	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(invoice.Subscription.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	if err := s.db.Subscription.UpdateOne(entSub).
		SetStatus(subscription.StatusPastDue).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to flag subscription past due: %w", err)
	}

	if u, uerr := s.db.User.Get(ctx, entSub.UserID); uerr == nil && s.mailer != nil {
		if merr := s.mailer.SendPaymentFailed(ctx, u.Email, u.Name, string(entSub.Plan)); merr != nil {
			log.Printf("⚠️  Failed to send payment-failed email: %v", merr)
		}
	}
	return nil
}

// priceIDForPlan returns the Stripe price ID for a plan.
func (s *Service) priceIDForPlan(plan string) (string, error) {
	switch plan {
	case "starter":
		return s.config.PriceStarter, nil
	case "growth":
		return s.config.PriceGrowth, nil
	case "enterprise":
		return s.config.PriceEnterprise, nil
	default:
		return "", domain.NewValidationError(fmt.Sprintf("invalid plan: %s", plan))
	}
}

// GetPricing returns the public pricing catalog.
func (s *Service) GetPricing() *models.PricingResponse {
	return &models.PricingResponse{
		Plans: []models.PricingPlan{
			{
				Name:        "starter",
				Price:       199,
				Credits:     2,
				Description: "For founders validating a single project",
				Features: []string{
					"2 consultation credits per month",
					"3 project submissions per month",
					"Dashboard notifications",
					"Email support",
				},
			},
			{
				Name:        "growth",
				Price:       499,
				Credits:     6,
				Description: "For teams shipping on a schedule",
				Features: []string{
					"6 consultation credits per month",
					"Priority report delivery",
					"Reputation tier tracking",
					"Email support",
				},
			},
			{
				Name:        "enterprise",
				Price:       1499,
				Credits:     entitlement.UnlimitedLimit,
				Description: "For funds and ecosystem partners",
				Features: []string{
					"Unlimited consultation credits",
					"Dedicated expert pool",
					"Custom report formats",
					"Priority support",
				},
			},
		},
	}
}
