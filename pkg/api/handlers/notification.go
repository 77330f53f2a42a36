package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
	"github.com/chainadvisory/chainadvisory-api/pkg/notifications"
)

// NotificationHandler handles dashboard notification endpoints
type NotificationHandler struct {
	service *notifications.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service *notifications.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Dashboard godoc
// @Summary Get dashboard notifications
// @Description Generate the caller's dashboard notification feed from their recent activity
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Notification feed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /notifications/dashboard [get]
func (h *NotificationHandler) Dashboard(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	feed, err := h.service.Dashboard(c.Request().Context(), userID, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notifications": feed,
		"count":         len(feed),
	})
}

// History returns delivery log entries for an email address (admin)
func (h *NotificationHandler) History(c echo.Context) error {
	recipient := c.QueryParam("recipient")
	if recipient == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_recipient",
			Message: "recipient query parameter is required",
		})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	logs, err := h.service.History(c.Request().Context(), recipient, limit)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(logs))
	for i, l := range logs {
		responses[i] = toNotificationLogResponse(l)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// AdminSummary returns the operational notification summary (admin)
func (h *NotificationHandler) AdminSummary(c echo.Context) error {
	summary, err := h.service.AdminSummary(c.Request().Context(), time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

func toNotificationLogResponse(l *ent.NotificationLog) map[string]interface{} {
	return map[string]interface{}{
		"id":         l.ID,
		"type":       string(l.Type),
		"email_sent": l.EmailSent,
		"recipient":  l.Recipient,
		"sender":     l.Sender,
		"details":    l.Details,
		"created_at": l.CreatedAt.Format(time.RFC3339),
	}
}
