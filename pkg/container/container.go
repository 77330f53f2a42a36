package container

import (
	"log"

	"github.com/chainadvisory/chainadvisory-api/config"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/handlers"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/auth"
	"github.com/chainadvisory/chainadvisory-api/pkg/backup"
	"github.com/chainadvisory/chainadvisory-api/pkg/billing"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/consultations"
	"github.com/chainadvisory/chainadvisory-api/pkg/database"
	"github.com/chainadvisory/chainadvisory-api/pkg/email"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/experts"
	"github.com/chainadvisory/chainadvisory-api/pkg/export"
	"github.com/chainadvisory/chainadvisory-api/pkg/jobs"
	"github.com/chainadvisory/chainadvisory-api/pkg/logger"
	"github.com/chainadvisory/chainadvisory-api/pkg/notifications"
	"github.com/chainadvisory/chainadvisory-api/pkg/projects"
	"github.com/chainadvisory/chainadvisory-api/pkg/reports"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
	"github.com/chainadvisory/chainadvisory-api/pkg/tiers"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB    *database.Client
	Cache *cache.Client

	// Services
	AuditLogger         *audit.Service
	EmailService        *email.Service
	EntitlementService  *entitlement.Service
	ReputationService   *reputation.Service
	NotificationService *notifications.Service
	ConsultationService *consultations.Service
	ReportService       *reports.Service
	ExpertService       *experts.Service
	ProjectService      *projects.Service
	TierService         *tiers.Service
	BillingService      *billing.Service
	ExportService       *export.Service
	BackupService       *backup.Service

	DraftStore *consultations.DraftStore

	// Auth
	TokenBlacklist *auth.TokenBlacklist

	// Background jobs
	CronManager *jobs.CronManager

	// Handlers
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	ConsultationHandler *handlers.ConsultationHandler
	ReportHandler       *handlers.ReportHandler
	ProjectHandler      *handlers.ProjectHandler
	ExpertHandler       *handlers.ExpertHandler
	BillingHandler      *handlers.BillingHandler
	NotificationHandler *handlers.NotificationHandler
	ReputationHandler   *handlers.ReputationHandler
	AdminHandler        *handlers.AdminHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() error {
	c.TokenBlacklist = auth.NewTokenBlacklist(c.Cache)

	c.AuditLogger = audit.NewService(c.DB.Ent)
	c.EntitlementService = entitlement.NewService(c.DB.Ent)
	c.ReputationService = reputation.NewService(c.DB.Ent, c.Cache)
	c.NotificationService = notifications.NewService(c.DB.Ent, c.EntitlementService, c.Logger)

	// Every email delivery attempt lands in the notification log
	c.EmailService = email.NewService(
		c.Config.EmailFrom,
		c.Config.EmailFromName,
		c.Config.FrontendURL,
		c.Config.SendGridAPIKey,
		c.NotificationService,
	)

	c.ConsultationService = consultations.NewService(c.DB.Ent, c.EntitlementService)
	c.DraftStore = consultations.NewDraftStore(c.Cache)
	c.ReportService = reports.NewService(c.DB.Ent)
	c.ExpertService = experts.NewService(c.DB.Ent, c.ReputationService)
	c.ProjectService = projects.NewService(c.DB.Ent, c.EntitlementService, c.ReputationService)
	c.TierService = tiers.NewService(c.DB.Ent, c.Cache, c.ReputationService)

	c.BillingService = billing.NewService(
		c.DB.Ent,
		c.EmailService,
		&billing.StripeConfig{
			SecretKey:       c.Config.StripeSecretKey,
			WebhookSecret:   c.Config.StripeWebhookSecret,
			PriceStarter:    c.Config.StripePriceStarter,
			PriceGrowth:     c.Config.StripePriceGrowth,
			PriceEnterprise: c.Config.StripePriceEnterprise,
			SuccessURL:      c.Config.FrontendURL + "/dashboard/settings/billing?success=true",
			CancelURL:       c.Config.FrontendURL + "/dashboard/settings/billing?canceled=true",
		},
	)

	c.ExportService = export.NewService(c.DB.Ent, c.Config.ExportStoragePath)

	// Backups are optional: without an S3 bucket the endpoints report disabled
	if c.Config.S3Bucket != "" {
		backupService, err := backup.NewService(backup.Config{
			AWSAccessKeyID:     c.Config.AWSAccessKeyID,
			AWSSecretAccessKey: c.Config.AWSSecretAccessKey,
			AWSRegion:          c.Config.AWSRegion,
			S3Bucket:           c.Config.S3Bucket,
			DatabaseURL:        c.Config.DatabaseURL,
			LocalBackupDir:     c.Config.BackupLocalPath,
			RetentionDays:      c.Config.BackupRetention,
		})
		if err != nil {
			c.Logger.Error("Failed to initialize backup service", "error", err)
			return err
		}
		c.BackupService = backupService
	}

	var backupper jobs.Backupper
	if c.BackupService != nil {
		backupper = c.BackupService
	}
	c.CronManager = jobs.NewCronManager(
		c.DB.Ent,
		c.EntitlementService,
		c.NotificationService,
		c.EmailService,
		backupper,
		log.Default(),
	)

	c.Logger.Info("Services initialized",
		"billing_service", "ready",
		"entitlement_service", "ready",
		"reputation_service", "ready",
		"backup_service", c.BackupService != nil)

	return nil
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.AuthHandler = handlers.NewAuthHandler(
		c.DB.Ent,
		c.Config,
		c.TokenBlacklist,
		c.Cache,
		c.AuditLogger,
		c.EmailService,
	)

	c.UserHandler = handlers.NewUserHandler(
		c.DB.Ent,
		c.EntitlementService,
		c.ReputationService,
		c.AuditLogger,
	)

	c.ConsultationHandler = handlers.NewConsultationHandler(
		c.ConsultationService,
		c.DraftStore,
		c.EmailService,
		c.AuditLogger,
	)

	c.ReportHandler = handlers.NewReportHandler(
		c.ReportService,
		c.EmailService,
		c.AuditLogger,
	)

	c.ProjectHandler = handlers.NewProjectHandler(c.ProjectService, c.AuditLogger)
	c.ExpertHandler = handlers.NewExpertHandler(c.ExpertService, c.EmailService, c.AuditLogger)
	c.BillingHandler = handlers.NewBillingHandler(c.BillingService, c.EntitlementService)
	c.NotificationHandler = handlers.NewNotificationHandler(c.NotificationService)
	c.ReputationHandler = handlers.NewReputationHandler(
		c.DB.Ent,
		c.ReputationService,
		c.TierService,
		c.AuditLogger,
	)
	c.AdminHandler = handlers.NewAdminHandler(
		c.DB.Ent,
		c.AuditLogger,
		c.ExportService,
		c.BackupService,
	)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if c.CronManager != nil {
		c.CronManager.Stop()
	}

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
