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
	"github.com/chainadvisory/chainadvisory-api/pkg/consultations"
	"github.com/chainadvisory/chainadvisory-api/pkg/email"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// ConsultationHandler handles consultation booking endpoints
type ConsultationHandler struct {
	service      *consultations.Service
	drafts       *consultations.DraftStore
	emailService *email.Service
	auditLogger  *audit.Service
	validator    *validator.Validate
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(service *consultations.Service, drafts *consultations.DraftStore, emailService *email.Service, auditLogger *audit.Service) *ConsultationHandler {
	return &ConsultationHandler{
		service:      service,
		drafts:       drafts,
		emailService: emailService,
		auditLogger:  auditLogger,
		validator:    validator.New(),
	}
}

// Quote godoc
// @Summary Quote a consultation price
// @Description Compute the price for a service type and duration without booking
// @Tags Consultations
// @Produce json
// @Param service_type query string true "Service type"
// @Param duration_minutes query int true "Duration in minutes (30, 45 or 60)"
// @Success 200 {object} map[string]interface{} "Price quote"
// @Failure 400 {object} models.ErrorResponse "Invalid pricing input"
// @Router /consultations/quote [get]
func (h *ConsultationHandler) Quote(c echo.Context) error {
	serviceType := c.QueryParam("service_type")
	minutes, err := strconv.Atoi(c.QueryParam("duration_minutes"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "duration_minutes must be an integer",
		})
	}

	priceCents, err := consultations.Quote(serviceType, minutes)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"service_type":     serviceType,
		"duration_minutes": minutes,
		"price_cents":      priceCents,
	})
}

// Book godoc
// @Summary Book a consultation
// @Description Book a consultation session, consuming one plan credit
// @Tags Consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body consultations.BookingInput true "Booking details"
// @Success 201 {object} map[string]interface{} "Booked session"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Insufficient credits"
// @Router /consultations [post]
func (h *ConsultationHandler) Book(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var input consultations.BookingInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	session, err := h.service.Book(c.Request().Context(), userID, input, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogConsultationBooked(context.Background(), userID, session.ID, map[string]interface{}{
		"service_type":     string(session.ServiceType),
		"duration_minutes": session.DurationMinutes,
		"price_cents":      session.PriceCents,
	}, ipAddress, userAgent)

	return c.JSON(http.StatusCreated, toConsultationResponse(session))
}

// SaveDraft stashes an in-progress booking form in Redis for 30 minutes
func (h *ConsultationHandler) SaveDraft(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var draft consultations.Draft
	if err := c.Bind(&draft); err != nil {
		return errors.ValidationError(c, err)
	}
	draft.SavedAt = time.Now()

	token := strconv.Itoa(userID)
	if err := h.drafts.Save(c.Request().Context(), token, &draft); err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Draft saved",
	})
}

// TakeDraft retrieves and removes the caller's booking draft
func (h *ConsultationHandler) TakeDraft(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	draft, err := h.drafts.Take(c.Request().Context(), strconv.Itoa(userID))
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, draft)
}

// List returns the caller's consultation history
func (h *ConsultationHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	limit, offset := paginationParams(c)
	sessions, err := h.service.ListForUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(sessions))
	for i, s := range sessions {
		responses[i] = toConsultationResponse(s)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// Get returns a single consultation owned by the caller
func (h *ConsultationHandler) Get(c echo.Context) error {
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

	session, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toConsultationResponse(session))
}

// Cancel cancels a pending or confirmed consultation owned by the caller
func (h *ConsultationHandler) Cancel(c echo.Context) error {
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

	session, err := h.service.Cancel(c.Request().Context(), userID, id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toConsultationResponse(session))
}

// Confirm confirms a pending consultation (admin)
func (h *ConsultationHandler) Confirm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	session, err := h.service.Confirm(c.Request().Context(), id)
	if err != nil {
		return errors.Domain(c, err)
	}

	user, err := session.QueryUser().Only(c.Request().Context())
	if err == nil {
		go h.emailService.SendConsultationConfirmation(context.Background(),
			user.Email, user.Name, string(session.ServiceType), session.ScheduledAt, session.PriceCents)
	}

	return c.JSON(http.StatusOK, toConsultationResponse(session))
}

// Complete marks a confirmed consultation as held (admin)
func (h *ConsultationHandler) Complete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	session, err := h.service.Complete(c.Request().Context(), id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toConsultationResponse(session))
}

func toConsultationResponse(s *ent.Consultation) map[string]interface{} {
	return map[string]interface{}{
		"id":               s.ID,
		"service_type":     string(s.ServiceType),
		"duration_minutes": s.DurationMinutes,
		"scheduled_at":     s.ScheduledAt.Format(time.RFC3339),
		"price_cents":      s.PriceCents,
		"status":           string(s.Status),
		"contact_phone":    s.ContactPhone,
		"notes":            s.Notes,
		"paid":             s.Paid,
		"created_at":       s.CreatedAt.Format(time.RFC3339),
	}
}

func paginationParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
