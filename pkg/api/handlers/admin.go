package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/auditlog"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/backup"
	"github.com/chainadvisory/chainadvisory-api/pkg/export"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	db            *ent.Client
	auditLogger   *audit.Service
	exportService *export.Service
	backupService *backup.Service
	validator     *validator.Validate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *ent.Client, auditLogger *audit.Service, exportService *export.Service, backupService *backup.Service) *AdminHandler {
	return &AdminHandler{
		db:            db,
		auditLogger:   auditLogger,
		exportService: exportService,
		backupService: backupService,
		validator:     validator.New(),
	}
}

// GetStats returns platform statistics
// @Summary Get platform statistics
// @Description Get aggregated statistics about users, subscriptions and workload (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Platform statistics"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden - Admin access required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	totalUsers, err := h.db.User.Query().Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	verifiedUsers, err := h.db.User.Query().
		Where(user.EmailVerifiedEQ(true)).
		Count(ctx)
	if err != nil {
		verifiedUsers = 0
	}

	experts, _ := h.db.User.Query().Where(user.RoleEQ(user.RoleExpert)).Count(ctx)

	// Users by submitter tier
	tierCounts := map[string]int{}
	for _, tier := range []user.SubmitterTier{
		user.SubmitterTierBasic,
		user.SubmitterTierVerified,
		user.SubmitterTierPremium,
		user.SubmitterTierVc,
		user.SubmitterTierEcosystemPartner,
	} {
		count, _ := h.db.User.Query().Where(user.SubmitterTierEQ(tier)).Count(ctx)
		tierCounts[string(tier)] = count
	}

	// Active subscriptions by plan
	planCounts := map[string]int{}
	for _, plan := range []subscription.Plan{
		subscription.PlanStarter,
		subscription.PlanGrowth,
		subscription.PlanEnterprise,
	} {
		count, _ := h.db.Subscription.Query().
			Where(subscription.StatusEQ(subscription.StatusActive), subscription.PlanEQ(plan)).
			Count(ctx)
		planCounts[string(plan)] = count
	}

	monthAgo := time.Now().UTC().AddDate(0, 0, -30)
	consultationsThisMonth, _ := h.db.Consultation.Query().
		Where(consultation.CreatedAtGTE(monthAgo)).
		Count(ctx)
	reportsThisMonth, _ := h.db.Report.Query().
		Where(report.CreatedAtGTE(monthAgo)).
		Count(ctx)
	projectsThisMonth, _ := h.db.Project.Query().
		Where(project.CreatedAtGTE(monthAgo)).
		Count(ctx)
	pendingProjects, _ := h.db.Project.Query().
		Where(project.StatusIn(project.StatusSubmitted, project.StatusInReview)).
		Count(ctx)

	stats := map[string]interface{}{
		"users": map[string]int{
			"total":    totalUsers,
			"verified": verifiedUsers,
			"experts":  experts,
		},
		"tiers":         tierCounts,
		"subscriptions": planCounts,
		"workload": map[string]int{
			"consultations_this_month": consultationsThisMonth,
			"reports_this_month":       reportsThisMonth,
			"projects_this_month":      projectsThisMonth,
			"projects_pending":         pendingProjects,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}

	return c.JSON(http.StatusOK, stats)
}

// ListUsers returns paginated list of users
// @Summary List all users
// @Description Get paginated list of users with optional filters (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 50, max: 100)"
// @Param tier query string false "Filter by submitter tier"
// @Param verified query string false "Filter by email verification (true, false)"
// @Param role query string false "Filter by user role (user, expert, admin, superadmin)"
// @Param status query string false "Filter by account status (active, suspended, deleted)"
// @Success 200 {object} map[string]interface{} "List of users with pagination"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden - Admin access required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	tier := c.QueryParam("tier")
	verified := c.QueryParam("verified")
	role := c.QueryParam("role")
	status := c.QueryParam("status")

	query := h.db.User.Query().
		Order(ent.Desc(user.FieldCreatedAt))

	if tier != "" {
		query = query.Where(user.SubmitterTierEQ(user.SubmitterTier(tier)))
	}
	if verified == "true" {
		query = query.Where(user.EmailVerifiedEQ(true))
	} else if verified == "false" {
		query = query.Where(user.EmailVerifiedEQ(false))
	}
	if role != "" {
		query = query.Where(user.RoleEQ(user.Role(role)))
	}
	if status != "" {
		query = query.Where(user.StatusEQ(user.Status(status)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	users, err := query.
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, u := range users {
		userResponses[i] = toUserResponse(u)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": userResponses,
		"pagination": map[string]int{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + limit - 1) / limit,
		},
	})
}

// GetUser returns detailed user information
// @Summary Get user details
// @Description Get detailed information about a user including their activity volumes (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User details"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	userData, err := h.db.User.Query().
		Where(user.IDEQ(userID)).
		WithSubscriptions().
		WithConsultations().
		WithReports().
		WithProjects().
		WithReputation().
		WithAuditLogs(func(q *ent.AuditLogQuery) {
			q.Order(ent.Desc(auditlog.FieldCreatedAt)).Limit(20)
		}).
		Only(ctx)
	if err != nil {
		return errors.NotFoundError(c, "user")
	}

	response := map[string]interface{}{
		"id":                    userData.ID,
		"email":                 userData.Email,
		"name":                  userData.Name,
		"company":               userData.Company,
		"role":                  string(userData.Role),
		"status":                string(userData.Status),
		"submitter_tier":        string(userData.SubmitterTier),
		"projects_used":         userData.ProjectsUsed,
		"monthly_project_limit": userData.MonthlyProjectLimit,
		"total_projects":        userData.TotalProjects,
		"successful_projects":   userData.SuccessfulProjects,
		"average_project_score": userData.AverageProjectScore,
		"email_verified":        userData.EmailVerified,
		"stripe_customer_id":    userData.StripeCustomerID,
		"created_at":            userData.CreatedAt,
		"last_login_at":         userData.LastLoginAt,
		"subscriptions":         len(userData.Edges.Subscriptions),
		"consultations":         len(userData.Edges.Consultations),
		"reports":               len(userData.Edges.Reports),
		"projects":              len(userData.Edges.Projects),
		"audit_logs":            len(userData.Edges.AuditLogs),
	}
	if userData.Edges.Reputation != nil {
		response["total_points"] = userData.Edges.Reputation.TotalPoints
		response["level"] = userData.Edges.Reputation.Level
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateUserRequest represents admin user update request
type UpdateUserRequest struct {
	Role          *string `json:"role" validate:"omitempty,oneof=user expert admin superadmin"`
	Status        *string `json:"status" validate:"omitempty,oneof=active suspended"`
	EmailVerified *bool   `json:"email_verified"`
}

// UpdateUser allows admin to update user details
// @Summary Update user
// @Description Update user role, status or email verification (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "User update data"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	update := h.db.User.UpdateOneID(userID)
	if req.Role != nil {
		update = update.SetRole(user.Role(*req.Role))
	}
	if req.Status != nil {
		update = update.SetStatus(user.Status(*req.Status))
	}
	if req.EmailVerified != nil {
		update = update.SetEmailVerified(*req.EmailVerified)
	}

	updatedUser, err := update.Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(updatedUser))
}

// SuspendUser suspends a user account
// @Summary Suspend user account
// @Description Suspend a user account - cannot suspend yourself or superadmins (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string "User suspended successfully"
// @Failure 400 {object} models.ErrorResponse "Cannot suspend own account"
// @Failure 403 {object} models.ErrorResponse "Cannot suspend superadmin"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	adminID := c.Get("user_id").(int)
	if adminID == userID {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_operation",
			Message: "Cannot suspend your own account",
		})
	}

	userData, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.NotFoundError(c, "user")
	}

	if userData.Role == user.RoleSuperadmin {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "forbidden",
			Message: "Cannot suspend superadmin account",
		})
	}

	_, err = h.db.User.UpdateOneID(userID).
		SetStatus(user.StatusSuspended).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserSuspension(context.Background(), adminID, userID, ipAddress, userAgent)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "User suspended successfully",
	})
}

// ReactivateUser lifts a suspension
func (h *AdminHandler) ReactivateUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	_, err = h.db.User.UpdateOneID(userID).
		SetStatus(user.StatusActive).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "User reactivated successfully",
	})
}

// ExportUsers generates a user export file and serves it (admin)
func (h *AdminHandler) ExportUsers(c echo.Context) error {
	adminID, _ := c.Get("user_id").(int)
	format := export.Format(c.QueryParam("format"))
	if format == "" {
		format = export.FormatCSV
	}

	result, err := h.exportService.ExportUsers(c.Request().Context(), format)
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogDataExport(context.Background(), adminID, string(format), result.RowCount, ipAddress, userAgent)

	return c.Attachment(result.FilePath, "users."+string(format))
}

// ExportConsultations generates a consultation export file and serves it (admin)
func (h *AdminHandler) ExportConsultations(c echo.Context) error {
	adminID, _ := c.Get("user_id").(int)
	format := export.Format(c.QueryParam("format"))
	if format == "" {
		format = export.FormatCSV
	}

	var since time.Time
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_since",
				Message: "since must be an RFC3339 timestamp",
			})
		}
		since = parsed
	}

	result, err := h.exportService.ExportConsultations(c.Request().Context(), format, since)
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogDataExport(context.Background(), adminID, string(format), result.RowCount, ipAddress, userAgent)

	return c.Attachment(result.FilePath, "consultations."+string(format))
}

// GetAuditLogs returns recent audit logs, optionally for one user (admin)
func (h *AdminHandler) GetAuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	ctx := c.Request().Context()

	var (
		logs []*ent.AuditLog
		err  error
	)
	switch {
	case c.QueryParam("user_id") != "":
		userID, convErr := strconv.Atoi(c.QueryParam("user_id"))
		if convErr != nil {
			return errors.ValidationError(c, convErr)
		}
		logs, err = h.auditLogger.GetUserLogs(ctx, userID, limit)
	case c.QueryParam("critical") == "true":
		logs, err = h.auditLogger.GetCriticalLogs(ctx, limit)
	default:
		logs, err = h.auditLogger.GetRecentLogs(ctx, limit)
	}
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	responses := make([]map[string]interface{}, len(logs))
	for i, l := range logs {
		responses[i] = map[string]interface{}{
			"id":         l.ID,
			"action":     string(l.Action),
			"severity":   string(l.Severity),
			"created_at": l.CreatedAt.Format(time.RFC3339),
			"metadata":   l.Metadata,
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// ListBackups returns available database backups (admin)
func (h *AdminHandler) ListBackups(c echo.Context) error {
	if h.backupService == nil {
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "backups_disabled",
			Message: "Backups are not configured",
		})
	}

	backups, err := h.backupService.ListBackups(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": backups})
}

// CreateBackup triggers an on-demand database backup (admin)
func (h *AdminHandler) CreateBackup(c echo.Context) error {
	if h.backupService == nil {
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "backups_disabled",
			Message: "Backups are not configured",
		})
	}

	location, err := h.backupService.Run(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	go h.auditLogger.LogBackupCreated(context.Background(), location, 0)

	return c.JSON(http.StatusCreated, map[string]string{
		"location": location,
	})
}
