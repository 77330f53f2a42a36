package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       auditlog.Action
	ResourceType *string
	ResourceID   *string
	IPAddress    *string
	UserAgent    *string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
	Description  *string
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.ResourceType != nil {
		create = create.SetResourceType(*entry.ResourceType)
	}
	if entry.ResourceID != nil {
		create = create.SetResourceID(*entry.ResourceID)
	}
	if entry.IPAddress != nil {
		create = create.SetIPAddress(*entry.IPAddress)
	}
	if entry.UserAgent != nil {
		create = create.SetUserAgent(*entry.UserAgent)
	}
	if entry.Description != nil {
		create = create.SetDescription(*entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogUserLogin logs a user login event
func (s *Service) LogUserLogin(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged in successfully"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserLogin,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserLogout logs a user logout event
func (s *Service) LogUserLogout(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged out"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserLogout,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserRegister logs a user registration event
func (s *Service) LogUserRegister(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "New user registered"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserRegister,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserPasswordChange logs a password change event
func (s *Service) LogUserPasswordChange(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User changed password"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserPasswordChange,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogConsultationBooked logs a consultation booking
func (s *Service) LogConsultationBooked(ctx context.Context, userID, consultationID int, metadata map[string]interface{}, ipAddress, userAgent string) error {
	desc := "User booked a consultation"
	resourceType := "consultation"
	resourceID := fmt.Sprintf("%d", consultationID)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionConsultationBooked,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogCreditConsumed logs a subscription credit being spent
func (s *Service) LogCreditConsumed(ctx context.Context, userID int, metadata map[string]interface{}) error {
	desc := "Consultation credit consumed"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionCreditConsumed,
		Metadata:    metadata,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogReportRequested logs a report request
func (s *Service) LogReportRequested(ctx context.Context, userID, reportID int, metadata map[string]interface{}, ipAddress, userAgent string) error {
	desc := "User requested a report"
	resourceType := "report"
	resourceID := fmt.Sprintf("%d", reportID)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionReportRequested,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogProjectSubmitted logs a project submission
func (s *Service) LogProjectSubmitted(ctx context.Context, userID, projectID int, ipAddress, userAgent string) error {
	desc := "User submitted a project for review"
	resourceType := "project"
	resourceID := fmt.Sprintf("%d", projectID)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionProjectSubmitted,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogExpertApplicationReviewed logs an admin review decision
func (s *Service) LogExpertApplicationReviewed(ctx context.Context, adminID, applicationID int, decision string, ipAddress, userAgent string) error {
	desc := "Admin reviewed expert application"
	resourceType := "expert_application"
	resourceID := fmt.Sprintf("%d", applicationID)
	metadata := map[string]interface{}{
		"admin_id": adminID,
		"decision": decision,
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionExpertApplicationReviewed,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Metadata:     metadata,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
	})
}

// LogAchievementAwarded logs a manual achievement award
func (s *Service) LogAchievementAwarded(ctx context.Context, adminID, targetUserID, points int) error {
	desc := "Achievement awarded"
	resourceType := "user"
	resourceID := fmt.Sprintf("%d", targetUserID)
	metadata := map[string]interface{}{
		"admin_id":       adminID,
		"target_user_id": targetUserID,
		"points":         points,
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionAchievementAwarded,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogReputationAdjusted logs a manual point correction
func (s *Service) LogReputationAdjusted(ctx context.Context, adminID, targetUserID, delta int, ipAddress, userAgent string) error {
	desc := "Admin adjusted reputation points"
	resourceType := "user"
	resourceID := fmt.Sprintf("%d", targetUserID)
	metadata := map[string]interface{}{
		"admin_id":       adminID,
		"target_user_id": targetUserID,
		"delta":          delta,
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionReputationAdjusted,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Metadata:     metadata,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
	})
}

// LogSubscriptionChange logs a subscription lifecycle event
func (s *Service) LogSubscriptionChange(ctx context.Context, userID int, action auditlog.Action, subscriptionID string, metadata map[string]interface{}) error {
	desc := "Subscription changed"
	resourceType := "subscription"
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       action,
		ResourceType: &resourceType,
		ResourceID:   &subscriptionID,
		Metadata:     metadata,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
	})
}

// LogUserSuspension logs a user suspension event by admin
func (s *Service) LogUserSuspension(ctx context.Context, adminID, targetUserID int, ipAddress, userAgent string) error {
	desc := "Admin suspended user account"
	resourceType := "user"
	resourceID := fmt.Sprintf("%d", targetUserID)
	metadata := map[string]interface{}{
		"admin_id":       adminID,
		"target_user_id": targetUserID,
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionUserSuspension,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Metadata:     metadata,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
	})
}

// LogBackupCreated logs a completed database backup
func (s *Service) LogBackupCreated(ctx context.Context, location string, sizeBytes int64) error {
	desc := "Database backup created"
	metadata := map[string]interface{}{
		"location":   location,
		"size_bytes": sizeBytes,
	}
	return s.Log(ctx, LogEntry{
		Action:      auditlog.ActionBackupCreated,
		Metadata:    metadata,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogDataExport logs an admin data export
func (s *Service) LogDataExport(ctx context.Context, adminID int, format string, rows int, ipAddress, userAgent string) error {
	desc := "Admin exported data"
	metadata := map[string]interface{}{
		"format": format,
		"rows":   rows,
	}
	return s.Log(ctx, LogEntry{
		UserID:      &adminID,
		Action:      auditlog.ActionDataExport,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Metadata:    metadata,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// GetUserLogs retrieves audit logs for a specific user
func (s *Service) GetUserLogs(ctx context.Context, userID int, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.UserIDEQ(userID)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetRecentLogs retrieves recent audit logs (for admin)
func (s *Service) GetRecentLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetLogsByAction retrieves logs filtered by action
func (s *Service) GetLogsByAction(ctx context.Context, action auditlog.Action, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.ActionEQ(action)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetCriticalLogs retrieves critical severity logs
func (s *Service) GetCriticalLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.SeverityEQ(auditlog.SeverityCritical)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
