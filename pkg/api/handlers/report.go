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
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
	"github.com/chainadvisory/chainadvisory-api/pkg/reports"
)

// ReportHandler handles advisory report endpoints
type ReportHandler struct {
	service      *reports.Service
	emailService *email.Service
	auditLogger  *audit.Service
	validator    *validator.Validate
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *reports.Service, emailService *email.Service, auditLogger *audit.Service) *ReportHandler {
	return &ReportHandler{
		service:      service,
		emailService: emailService,
		auditLogger:  auditLogger,
		validator:    validator.New(),
	}
}

// Quote godoc
// @Summary Quote a report price
// @Description Compute the price for a report type and priority without ordering
// @Tags Reports
// @Produce json
// @Param report_type query string true "Report type"
// @Param priority query string false "Priority (low, medium, high)"
// @Success 200 {object} map[string]interface{} "Price quote"
// @Failure 400 {object} models.ErrorResponse "Invalid pricing input"
// @Router /reports/quote [get]
func (h *ReportHandler) Quote(c echo.Context) error {
	reportType := c.QueryParam("report_type")
	priority := c.QueryParam("priority")
	if priority == "" {
		priority = "low"
	}

	priceCents, err := reports.Quote(reportType, priority)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"report_type": reportType,
		"priority":    priority,
		"price_cents": priceCents,
	})
}

// Request orders a new report for the caller
func (h *ReportHandler) Request(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var input reports.RequestInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	rep, err := h.service.Request(c.Request().Context(), userID, input)
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogReportRequested(context.Background(), userID, rep.ID, map[string]interface{}{
		"report_type": string(rep.ReportType),
		"priority":    string(rep.Priority),
		"price_cents": rep.PriceCents,
	}, ipAddress, userAgent)

	return c.JSON(http.StatusCreated, toReportResponse(rep))
}

// List returns the caller's report history
func (h *ReportHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	limit, offset := paginationParams(c)
	reps, err := h.service.ListForUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(reps))
	for i, r := range reps {
		responses[i] = toReportResponse(r)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// Get returns a single report owned by the caller
func (h *ReportHandler) Get(c echo.Context) error {
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

	rep, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toReportResponse(rep))
}

// Cancel cancels a requested report owned by the caller
func (h *ReportHandler) Cancel(c echo.Context) error {
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

	rep, err := h.service.Cancel(c.Request().Context(), userID, id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toReportResponse(rep))
}

// Start moves a requested report into production (admin)
func (h *ReportHandler) Start(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	rep, err := h.service.Start(c.Request().Context(), id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toReportResponse(rep))
}

// Deliver marks an in-progress report as delivered and notifies the owner (admin)
func (h *ReportHandler) Deliver(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	rep, err := h.service.Deliver(c.Request().Context(), id, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	owner, err := rep.QueryUser().Only(c.Request().Context())
	if err == nil {
		go h.emailService.SendReportReady(context.Background(), owner.Email, owner.Name, string(rep.ReportType))
	}

	return c.JSON(http.StatusOK, toReportResponse(rep))
}

func toReportResponse(r *ent.Report) map[string]interface{} {
	resp := map[string]interface{}{
		"id":          r.ID,
		"report_type": string(r.ReportType),
		"priority":    string(r.Priority),
		"price_cents": r.PriceCents,
		"status":      string(r.Status),
		"brief":       r.Brief,
		"paid":        r.Paid,
		"created_at":  r.CreatedAt.Format(time.RFC3339),
	}
	if r.DeliveredAt != nil {
		resp["delivered_at"] = r.DeliveredAt.Format(time.RFC3339)
	}
	return resp
}
