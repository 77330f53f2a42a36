package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/achievement"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
	"github.com/chainadvisory/chainadvisory-api/pkg/tiers"
)

// ReputationHandler handles reputation and tier administration endpoints
type ReputationHandler struct {
	db          *ent.Client
	service     *reputation.Service
	tiers       *tiers.Service
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewReputationHandler creates a new reputation handler
func NewReputationHandler(db *ent.Client, service *reputation.Service, tiersService *tiers.Service, auditLogger *audit.Service) *ReputationHandler {
	return &ReputationHandler{
		db:          db,
		service:     service,
		tiers:       tiersService,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// ListAchievements returns the caller's achievements
func (h *ReputationHandler) ListAchievements(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	rows, err := h.db.Achievement.Query().
		Where(achievement.HasRecordWith(reputationrecord.UserIDEQ(userID))).
		Order(ent.Desc(achievement.FieldAwardedAt)).
		All(c.Request().Context())
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	responses := make([]map[string]interface{}, len(rows))
	for i, a := range rows {
		responses[i] = map[string]interface{}{
			"id":             a.ID,
			"title":          a.Title,
			"description":    a.Description,
			"points_awarded": a.PointsAwarded,
			"awarded_at":     a.AwardedAt.Format(time.RFC3339),
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// AwardAchievement grants an achievement with bonus points to a user (admin)
func (h *ReputationHandler) AwardAchievement(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	var req struct {
		Title       string `json:"title" validate:"required,min=3,max=100"`
		Description string `json:"description" validate:"required,min=3"`
		Points      int    `json:"points" validate:"required,gt=0"`
	}
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	award, err := h.service.AwardAchievement(c.Request().Context(), userID, req.Title, req.Description, req.Points)
	if err != nil {
		return errors.Domain(c, err)
	}

	go h.auditLogger.LogAchievementAwarded(context.Background(), adminID, userID, req.Points)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":             award.ID,
		"title":          award.Title,
		"points_awarded": award.PointsAwarded,
		"awarded_at":     award.AwardedAt.Format(time.RFC3339),
	})
}

// AdjustPoints applies a manual point correction to a user (admin)
func (h *ReputationHandler) AdjustPoints(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	var req struct {
		Delta int `json:"delta" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	record, err := h.service.AdjustPoints(c.Request().Context(), userID, req.Delta)
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogReputationAdjusted(context.Background(), adminID, userID, req.Delta, ipAddress, userAgent)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":      userID,
		"total_points": record.TotalPoints,
		"level":        record.Level,
	})
}

// ListThresholds returns the tier threshold table
func (h *ReputationHandler) ListThresholds(c echo.Context) error {
	rows, err := h.tiers.ListThresholds(c.Request().Context())
	if err != nil {
		return errors.Domain(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": rows})
}

// UpdateThreshold changes a tier's cutoff or monthly quota (admin)
func (h *ReputationHandler) UpdateThreshold(c echo.Context) error {
	tier := c.Param("tier")

	var req tiers.UpdateThresholdRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	row, err := h.tiers.UpdateThreshold(c.Request().Context(), tier, req)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, row)
}

// ResyncTiers recomputes every user's tier from the threshold table (admin)
func (h *ReputationHandler) ResyncTiers(c echo.Context) error {
	changed, err := h.tiers.ResyncUsers(c.Request().Context())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users_changed": changed,
	})
}
