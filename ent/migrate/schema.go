// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "points_awarded", Type: field.TypeInt},
		{Name: "awarded_at", Type: field.TypeTime},
		{Name: "reputation_record_achievements", Type: field.TypeInt},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "achievements_reputation_records_achievements",
				Columns:    []*schema.Column{AchievementsColumns[5]},
				RefColumns: []*schema.Column{ReputationRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_awarded_at",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[4]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"assigned", "in_progress", "completed"}, Default: "assigned"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "expert_id", Type: field.TypeInt},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_projects_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "assignments_users_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_project_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[6]},
			},
			{
				Name:    "assignment_expert_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[7]},
			},
			{
				Name:    "assignment_status",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[1]},
			},
			{
				Name:    "assignment_project_id_expert_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[6], AssignmentsColumns[7]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"user_login", "user_logout", "user_register", "user_profile_update", "user_password_change", "user_email_verify", "user_update", "user_suspension", "consultation_booked", "consultation_cancelled", "report_requested", "project_submitted", "expert_application_reviewed", "achievement_awarded", "reputation_adjusted", "credit_consumed", "subscription_create", "subscription_update", "subscription_cancel", "payment_success", "payment_failed", "backup_created", "data_export"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_severity",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[9]},
			},
		},
	}
	// ConsultationsColumns holds the columns for the "consultations" table.
	ConsultationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "service_type", Type: field.TypeEnum, Enums: []string{"due_diligence", "advisory", "tokenomics", "security_review"}},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "price_cents", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled"}, Default: "pending"},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "paid", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ConsultationsTable holds the schema information for the "consultations" table.
	ConsultationsTable = &schema.Table{
		Name:       "consultations",
		Columns:    ConsultationsColumns,
		PrimaryKey: []*schema.Column{ConsultationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "consultations_users_consultations",
				Columns:    []*schema.Column{ConsultationsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "consultation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[11]},
			},
			{
				Name:    "consultation_status",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[5]},
			},
			{
				Name:    "consultation_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[3]},
			},
			{
				Name:    "consultation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[9]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assignment_evaluation", Type: field.TypeInt, Unique: true},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_assignments_evaluation",
				Columns:    []*schema.Column{EvaluationsColumns[5]},
				RefColumns: []*schema.Column{AssignmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[4]},
			},
		},
	}
	// ExpertApplicationsColumns holds the columns for the "expert_applications" table.
	ExpertApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "verification_status", Type: field.TypeEnum, Enums: []string{"pending", "under_review", "verified", "rejected", "suspended"}, Default: "pending"},
		{Name: "specialization", Type: field.TypeString},
		{Name: "motivation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reputation_points", Type: field.TypeInt, Default: 0},
		{Name: "expert_tier", Type: field.TypeEnum, Enums: []string{"junior", "senior", "principal"}, Default: "junior"},
		{Name: "accuracy_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "review_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ExpertApplicationsTable holds the schema information for the "expert_applications" table.
	ExpertApplicationsTable = &schema.Table{
		Name:       "expert_applications",
		Columns:    ExpertApplicationsColumns,
		PrimaryKey: []*schema.Column{ExpertApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "expert_applications_users_expert_applications",
				Columns:    []*schema.Column{ExpertApplicationsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "expertapplication_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExpertApplicationsColumns[11]},
			},
			{
				Name:    "expertapplication_verification_status",
				Unique:  false,
				Columns: []*schema.Column{ExpertApplicationsColumns[1]},
			},
			{
				Name:    "expertapplication_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExpertApplicationsColumns[9]},
			},
		},
	}
	// NotificationLogsColumns holds the columns for the "notification_logs" table.
	NotificationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"consultation_confirmation", "consultation_reminder", "report_ready", "subscription_activated", "subscription_renewed", "subscription_cancelled", "subscription_expiring", "payment_failed", "expert_application_update", "email_verification", "password_reset"}},
		{Name: "email_sent", Type: field.TypeBool},
		{Name: "recipient", Type: field.TypeString},
		{Name: "sender", Type: field.TypeString},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationLogsTable holds the schema information for the "notification_logs" table.
	NotificationLogsTable = &schema.Table{
		Name:       "notification_logs",
		Columns:    NotificationLogsColumns,
		PrimaryKey: []*schema.Column{NotificationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationlog_type",
				Unique:  false,
				Columns: []*schema.Column{NotificationLogsColumns[1]},
			},
			{
				Name:    "notificationlog_email_sent",
				Unique:  false,
				Columns: []*schema.Column{NotificationLogsColumns[2]},
			},
			{
				Name:    "notificationlog_recipient",
				Unique:  false,
				Columns: []*schema.Column{NotificationLogsColumns[3]},
			},
			{
				Name:    "notificationlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationLogsColumns[6]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"defi", "infrastructure", "nft", "dao", "gaming", "other"}, Default: "other"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "in_review", "completed", "withdrawn"}, Default: "submitted"},
		{Name: "final_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_projects",
				Columns:    []*schema.Column{ProjectsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
			},
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_type", Type: field.TypeEnum, Enums: []string{"advisory_notes", "market_analysis", "audit_summary", "tokenomics_review"}},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "price_cents", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "in_progress", "delivered", "cancelled"}, Default: "requested"},
		{Name: "brief", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "paid", Type: field.TypeBool, Default: false},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[10]},
			},
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[4]},
			},
			{
				Name:    "report_priority",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[2]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[8]},
			},
		},
	}
	// ReputationRecordsColumns holds the columns for the "reputation_records" table.
	ReputationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "projects_submitted", Type: field.TypeInt, Default: 0},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "completion_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
	}
	// ReputationRecordsTable holds the schema information for the "reputation_records" table.
	ReputationRecordsTable = &schema.Table{
		Name:       "reputation_records",
		Columns:    ReputationRecordsColumns,
		PrimaryKey: []*schema.Column{ReputationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reputation_records_users_reputation",
				Columns:    []*schema.Column{ReputationRecordsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reputationrecord_user_id",
				Unique:  true,
				Columns: []*schema.Column{ReputationRecordsColumns[8]},
			},
			{
				Name:    "reputationrecord_total_points",
				Unique:  false,
				Columns: []*schema.Column{ReputationRecordsColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"starter", "growth", "enterprise"}},
		{Name: "billing_cycle", Type: field.TypeEnum, Enums: []string{"monthly", "yearly"}, Default: "monthly"},
		{Name: "price_cents", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "expired", "cancelled", "past_due", "trialing"}, Default: "active"},
		{Name: "credit_allotment", Type: field.TypeInt, Default: 0},
		{Name: "used_credits", Type: field.TypeInt, Default: 0},
		{Name: "is_unlimited", Type: field.TypeBool, Default: false},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_price_id", Type: field.TypeString, Nullable: true},
		{Name: "current_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_at_period_end", Type: field.TypeBool, Default: false},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[16]},
			},
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[8]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[4]},
			},
			{
				Name:    "subscription_current_period_end",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[11]},
			},
			{
				Name:    "subscription_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[14]},
			},
		},
	}
	// TierThresholdsColumns holds the columns for the "tier_thresholds" table.
	TierThresholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"basic", "verified", "premium", "vc", "ecosystem_partner"}},
		{Name: "min_points", Type: field.TypeInt},
		{Name: "monthly_project_limit", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TierThresholdsTable holds the schema information for the "tier_thresholds" table.
	TierThresholdsTable = &schema.Table{
		Name:       "tier_thresholds",
		Columns:    TierThresholdsColumns,
		PrimaryKey: []*schema.Column{TierThresholdsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tierthreshold_tier",
				Unique:  true,
				Columns: []*schema.Column{TierThresholdsColumns[1]},
			},
			{
				Name:    "tierthreshold_min_points",
				Unique:  false,
				Columns: []*schema.Column{TierThresholdsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "expert", "admin", "superadmin"}, Default: "user"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended", "deleted"}, Default: "active"},
		{Name: "submitter_tier", Type: field.TypeEnum, Enums: []string{"basic", "verified", "premium", "vc", "ecosystem_partner"}, Default: "basic"},
		{Name: "projects_used", Type: field.TypeInt, Default: 0},
		{Name: "monthly_project_limit", Type: field.TypeInt, Default: 3},
		{Name: "last_reset_at", Type: field.TypeTime},
		{Name: "total_projects", Type: field.TypeInt, Default: 0},
		{Name: "successful_projects", Type: field.TypeInt, Default: 0},
		{Name: "average_project_score", Type: field.TypeFloat64, Default: 0},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verification_token", Type: field.TypeString, Nullable: true},
		{Name: "email_verification_token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[18]},
			},
			{
				Name:    "user_submitter_tier",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[19]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		AssignmentsTable,
		AuditLogsTable,
		ConsultationsTable,
		EvaluationsTable,
		ExpertApplicationsTable,
		NotificationLogsTable,
		ProjectsTable,
		ReportsTable,
		ReputationRecordsTable,
		SubscriptionsTable,
		TierThresholdsTable,
		UsersTable,
	}
)

func init() {
	AchievementsTable.ForeignKeys[0].RefTable = ReputationRecordsTable
	AssignmentsTable.ForeignKeys[0].RefTable = ProjectsTable
	AssignmentsTable.ForeignKeys[1].RefTable = UsersTable
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	ConsultationsTable.ForeignKeys[0].RefTable = UsersTable
	EvaluationsTable.ForeignKeys[0].RefTable = AssignmentsTable
	ExpertApplicationsTable.ForeignKeys[0].RefTable = UsersTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
	ReportsTable.ForeignKeys[0].RefTable = UsersTable
	ReputationRecordsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
