package models

// CheckoutRequest represents a checkout session request
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=starter growth enterprise"`
}

// CheckoutResponse represents a Stripe checkout session
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// CustomerPortalResponse represents a Stripe customer portal session
type CustomerPortalResponse struct {
	URL string `json:"url"`
}

// PricingPlan describes one subscription plan in the public catalog
type PricingPlan struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Credits     int      `json:"credits"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PricingResponse represents the public pricing catalog
type PricingResponse struct {
	Plans []PricingPlan `json:"plans"`
}

// SubscriptionResponse represents the user's subscription in responses
type SubscriptionResponse struct {
	ID                 int    `json:"id"`
	Plan               string `json:"plan"`
	BillingCycle       string `json:"billing_cycle"`
	Status             string `json:"status"`
	PriceCents         int    `json:"price_cents"`
	CreditAllotment    int    `json:"credit_allotment"`
	UsedCredits        int    `json:"used_credits"`
	IsUnlimited        bool   `json:"is_unlimited"`
	CurrentPeriodStart string `json:"current_period_start"`
	CurrentPeriodEnd   string `json:"current_period_end"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
}
