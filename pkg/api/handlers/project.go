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
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
	"github.com/chainadvisory/chainadvisory-api/pkg/projects"
)

// ProjectHandler handles project submission and evaluation endpoints
type ProjectHandler struct {
	service     *projects.Service
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service *projects.Service, auditLogger *audit.Service) *ProjectHandler {
	return &ProjectHandler{
		service:     service,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// Submit godoc
// @Summary Submit a project for evaluation
// @Description Submit a blockchain project, charging one unit of the monthly quota
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects.SubmitInput true "Project details"
// @Success 201 {object} map[string]interface{} "Submitted project"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Monthly quota exhausted"
// @Router /projects [post]
func (h *ProjectHandler) Submit(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var input projects.SubmitInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	proj, err := h.service.Submit(c.Request().Context(), userID, input, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogProjectSubmitted(context.Background(), userID, proj.ID, ipAddress, userAgent)

	return c.JSON(http.StatusCreated, toProjectResponse(proj))
}

// List returns the caller's projects
func (h *ProjectHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	limit, offset := paginationParams(c)
	projs, err := h.service.ListForUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(projs))
	for i, p := range projs {
		responses[i] = toProjectResponse(p)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// Get returns a single project owned by the caller (admins see any)
func (h *ProjectHandler) Get(c echo.Context) error {
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
	proj, err := h.service.Get(c.Request().Context(), userID, id, isAdmin)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toProjectResponse(proj))
}

// Withdraw withdraws a submitted project owned by the caller
func (h *ProjectHandler) Withdraw(c echo.Context) error {
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

	proj, err := h.service.Withdraw(c.Request().Context(), userID, id)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toProjectResponse(proj))
}

// AssignExpert assigns an expert reviewer to a project (admin)
func (h *ProjectHandler) AssignExpert(c echo.Context) error {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid_id",
		})
	}

	var req struct {
		ExpertID int `json:"expert_id" validate:"required,gt=0"`
	}
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	assignment, err := h.service.AssignExpert(c.Request().Context(), projectID, req.ExpertID)
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusCreated, toAssignmentResponse(assignment))
}

// MyAssignments returns the caller's expert assignments
func (h *ProjectHandler) MyAssignments(c echo.Context) error {
	expertID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	assignments, err := h.service.ListAssignmentsForExpert(c.Request().Context(), expertID)
	if err != nil {
		return errors.Domain(c, err)
	}

	responses := make([]map[string]interface{}, len(assignments))
	for i, a := range assignments {
		responses[i] = toAssignmentResponse(a)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": responses})
}

// StartAssignment marks an assignment as in progress (expert)
func (h *ProjectHandler) StartAssignment(c echo.Context) error {
	expertID, ok := c.Get("user_id").(int)
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

	assignment, err := h.service.StartAssignment(c.Request().Context(), id, expertID, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusOK, toAssignmentResponse(assignment))
}

// CompleteAssignment submits the expert's evaluation, closing the assignment
func (h *ProjectHandler) CompleteAssignment(c echo.Context) error {
	expertID, ok := c.Get("user_id").(int)
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

	var input projects.EvaluationInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	evaluation, err := h.service.CompleteAssignment(c.Request().Context(), id, expertID, input, time.Now())
	if err != nil {
		return errors.Domain(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":         evaluation.ID,
		"score":      evaluation.Score,
		"rating":     evaluation.Rating,
		"summary":    evaluation.Summary,
		"created_at": evaluation.CreatedAt.Format(time.RFC3339),
	})
}

func toProjectResponse(p *ent.Project) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    string(p.Category),
		"status":      string(p.Status),
		"final_score": p.FinalScore,
		"created_at":  p.CreatedAt.Format(time.RFC3339),
	}
}

func toAssignmentResponse(a *ent.Assignment) map[string]interface{} {
	resp := map[string]interface{}{
		"id":         a.ID,
		"project_id": a.ProjectID,
		"expert_id":  a.ExpertID,
		"status":     string(a.Status),
		"created_at": a.CreatedAt.Format(time.RFC3339),
	}
	if a.StartedAt != nil {
		resp["started_at"] = a.StartedAt.Format(time.RFC3339)
	}
	if a.CompletedAt != nil {
		resp["completed_at"] = a.CompletedAt.Format(time.RFC3339)
	}
	return resp
}
