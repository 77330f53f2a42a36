package handlers

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/billing"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *billing.Service
	entitlement    *entitlement.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service, entitlementService *entitlement.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		entitlement:    entitlementService,
		validator:      validator.New(),
	}
}

// validateReturnURL validates and sanitizes return URL to prevent open redirect attacks.
// Returns a safe URL from the whitelist or the default URL if validation fails.
func validateReturnURL(returnURL string) string {
	const defaultURL = "https://chainadvisory.io/dashboard/settings/billing"

	if returnURL == "" {
		return defaultURL
	}

	parsed, err := url.Parse(returnURL)
	if err != nil {
		return defaultURL
	}

	// Only allow http and https schemes (prevents javascript:, data:, ftp:, etc.)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return defaultURL
	}

	// Reject URLs with userinfo (prevents phishing: https://attacker@legitimate.com)
	if parsed.User != nil && parsed.User.String() != "" {
		return defaultURL
	}

	allowedHosts := []string{
		"localhost:3001",        // Development
		"chainadvisory.io",      // Production
		"www.chainadvisory.io",  // Production WWW
	}

	for _, allowedHost := range allowedHosts {
		if parsed.Host == allowedHost {
			return returnURL
		}
	}

	return defaultURL
}

// CreateCheckout handles creating a checkout session
// @Summary Create Stripe checkout session
// @Description Create a new Stripe checkout session to purchase a subscription plan
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Checkout configuration with plan"
// @Success 200 {object} models.CheckoutResponse "Checkout session created with URL"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	session, err := h.billingService.CreateCheckoutSession(c.Request().Context(), userID, req.Plan)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// CreatePortalSession handles creating a customer portal session
// @Summary Create Stripe customer portal session
// @Description Create a session to access the Stripe customer portal for managing subscriptions and payment methods
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param return_url query string false "URL to return to after portal session (validated against whitelist)"
// @Success 200 {object} models.CustomerPortalResponse "Portal session created with URL"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	returnURL := validateReturnURL(c.QueryParam("return_url"))

	portal, err := h.billingService.CreateCustomerPortalSession(c.Request().Context(), userID, returnURL)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, portal)
}

// HandleWebhook handles Stripe webhook events
// @Summary Handle Stripe webhook
// @Description Process Stripe webhook events for subscription updates, payment confirmations, and cancellations
// @Tags Billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe webhook signature for verification"
// @Param payload body object true "Stripe webhook event payload"
// @Success 200 {object} models.SuccessResponse "Webhook processed successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request or missing signature"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /webhook/stripe [post]
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "missing_signature",
		})
	}

	if err := h.billingService.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Webhook processed successfully",
	})
}

// GetPricing handles returning pricing information
// @Summary Get pricing plans
// @Description Get all available subscription plans with pricing and credit allotments
// @Tags Billing
// @Produce json
// @Success 200 {object} models.PricingResponse "Pricing information for all plans"
// @Router /billing/pricing [get]
func (h *BillingHandler) GetPricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.GetPricing())
}

// GetSubscription returns the caller's active subscription
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	sub, err := h.entitlement.ActiveSubscription(c.Request().Context(), userID)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, models.SubscriptionResponse{
		ID:                 sub.ID,
		Plan:               string(sub.Plan),
		Status:             string(sub.Status),
		BillingCycle:       string(sub.BillingCycle),
		PriceCents:         sub.PriceCents,
		CreditAllotment:    sub.CreditAllotment,
		UsedCredits:        sub.UsedCredits,
		IsUnlimited:        sub.IsUnlimited,
		CurrentPeriodStart: sub.CurrentPeriodStart.Format(time.RFC3339),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd.Format(time.RFC3339),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	})
}
