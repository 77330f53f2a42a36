package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

// UserHandler handles user profile and entitlement endpoints
type UserHandler struct {
	db          *ent.Client
	entitlement *entitlement.Service
	reputation  *reputation.Service
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *ent.Client, entitlementService *entitlement.Service, reputationService *reputation.Service, auditLogger *audit.Service) *UserHandler {
	return &UserHandler{
		db:          db,
		entitlement: entitlementService,
		reputation:  reputationService,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// UpdateProfile updates the current user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	update := h.db.User.UpdateOneID(userID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Company != nil {
		update = update.SetCompany(*req.Company)
	}

	updated, err := update.Save(c.Request().Context())
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// GetQuota godoc
// @Summary Get monthly project quota
// @Description Get the current user's monthly submission quota and next reset date
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.QuotaResponse "Quota status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/quota [get]
func (h *UserHandler) GetQuota(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	quota, err := h.entitlement.Quota(c.Request().Context(), userID, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, models.QuotaResponse{
		Used:        quota.Used,
		Limit:       quota.Limit,
		Unlimited:   quota.Unlimited,
		Remaining:   quota.Remaining,
		PercentUsed: quota.PercentUsed,
		ResetDate:   quota.ResetDate.Format(time.RFC3339),
	})
}

// GetCredits godoc
// @Summary Get consultation credits
// @Description Get the current user's remaining consultation credits on their active plan
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CreditsResponse "Credit balance"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "No active subscription"
// @Router /users/me/credits [get]
func (h *UserHandler) GetCredits(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	ctx := c.Request().Context()

	sub, err := h.entitlement.ActiveSubscription(ctx, userID)
	if err != nil {
		return errors.Domain(c, err)
	}

	balance, err := h.entitlement.CreditBalance(ctx, userID)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, models.CreditsResponse{
		Plan:             string(sub.Plan),
		RemainingCredits: balance.RemainingCredits,
		UsedCredits:      balance.UsedCredits,
		IsUnlimited:      balance.IsUnlimited,
	})
}

// GetTierProgress godoc
// @Summary Get reputation tier progress
// @Description Get the current user's tier, points and progress toward the next tier
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TierProgressResponse "Tier standing"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me/tier [get]
func (h *UserHandler) GetTierProgress(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	ctx := c.Request().Context()

	record, err := h.reputation.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return errors.Domain(c, err)
	}

	progress, err := h.reputation.Progress(ctx, userID)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, models.TierProgressResponse{
		CurrentTier:     progress.CurrentTier,
		NextTier:        progress.NextTier,
		ProgressPercent: progress.ProgressPercent,
		TotalPoints:     record.TotalPoints,
		Level:           record.Level,
	})
}

// DeleteAccount soft-deletes the current user's account. Accounts are never
// hard-deleted so evaluation history stays intact.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	err := h.db.User.UpdateOneID(userID).
		SetStatus(user.StatusDeleted).
		Exec(c.Request().Context())
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserSuspension(context.Background(), userID, userID, ipAddress, userAgent)

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Account deleted",
	})
}

func toUserResponse(u *ent.User) *models.UserResponse {
	return &models.UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		Company:             u.Company,
		Role:                string(u.Role),
		Status:              string(u.Status),
		SubmitterTier:       string(u.SubmitterTier),
		ProjectsUsed:        u.ProjectsUsed,
		ProjectLimit:        u.MonthlyProjectLimit,
		TotalProjects:       u.TotalProjects,
		SuccessfulProjects:  u.SuccessfulProjects,
		AverageProjectScore: u.AverageProjectScore,
		EmailVerified:       u.EmailVerified,
		CreatedAt:           u.CreatedAt.Format(time.RFC3339),
	}
}
