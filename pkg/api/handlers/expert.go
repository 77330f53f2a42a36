package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/email"
	"github.com/chainadvisory/chainadvisory-api/pkg/experts"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// ExpertHandler handles expert application endpoints
type ExpertHandler struct {
	service      *experts.Service
	emailService *email.Service
	auditLogger  *audit.Service
	validator    *validator.Validate
}

// NewExpertHandler creates a new expert handler
func NewExpertHandler(service *experts.Service, emailService *email.Service, auditLogger *audit.Service) *ExpertHandler {
	return &ExpertHandler{
		service:      service,
		emailService: emailService,
		auditLogger:  auditLogger,
		validator:    validator.New(),
	}
}

// Apply godoc
// @Summary Apply to become an expert
// @Description Submit an expert application for admin review
// @Tags Experts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body experts.ApplicationInput true "Application details"
// @Success 201 {object} map[string]interface{} "Submitted application"
// @Failure 409 {object} models.ErrorResponse "Application already open"
// @Router /experts/apply [post]
func (h *ExpertHandler) Apply(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var input experts.ApplicationInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	app, err := h.service.Apply(c.Request().Context(), userID, input)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// Get returns an application; owners see their own, admins see any
func (h *ExpertHandler) Get(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	isAdmin, _ := c.Get("is_admin").(bool)
	app, err := h.service.Get(c.Request().Context(), userID, id, isAdmin)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// ListPending returns applications awaiting review, oldest first (admin)
func (h *ExpertHandler) ListPending(c echo.Context) error {
	limit, offset := paginationParams(c)

	apps, err := h.service.ListPending(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(apps))
	for i, app := range apps {
		responses[i] = toApplicationResponse(app)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// Review applies an admin decision to an application (admin)
func (h *ExpertHandler) Review(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	var input experts.ReviewInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	app, err := h.service.Review(c.Request().Context(), id, input, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogExpertApplicationReviewed(context.Background(), adminID, app.ID, string(input.Action), ipAddress, userAgent)

	applicant, err := app.QueryUser().Only(c.Request().Context())
	if err == nil {
		go h.emailService.SendExpertApplicationUpdate(context.Background(),
			applicant.Email, applicant.Name, string(app.VerificationStatus))
	}

	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

func toApplicationResponse(app *ent.ExpertApplication) map[string]interface{} {
	resp := map[string]interface{}{
		"id":                  app.ID,
		"user_id":             app.UserID,
		"verification_status": string(app.VerificationStatus),
		"specialization":      app.Specialization,
		"motivation":          app.Motivation,
		"reputation_points":   app.ReputationPoints,
		"expert_tier":         string(app.ExpertTier),
		"accuracy_rate":       app.AccuracyRate,
		"review_notes":        app.ReviewNotes,
		"created_at":          app.CreatedAt.Format(time.RFC3339),
	}
	if app.ReviewedAt != nil {
		resp["reviewed_at"] = app.ReviewedAt.Format(time.RFC3339)
	}
	return resp
}
