package main

// @title ChainAdvisory API
// @version 1.0
// @description Blockchain consulting platform API. Expert project evaluations, consultations and research reports.
// @termsOfService https://chainadvisory.io/terms

// @contact.name API Support
// @contact.url https://chainadvisory.io/support
// @contact.email support@chainadvisory.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/chainadvisory/chainadvisory-api/config"
	_ "github.com/chainadvisory/chainadvisory-api/docs" // Swagger docs (generated)
	"github.com/chainadvisory/chainadvisory-api/pkg/container"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	custommiddleware "github.com/chainadvisory/chainadvisory-api/pkg/middleware"
	"github.com/chainadvisory/chainadvisory-api/pkg/testdata"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer app.Close()

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootCancel()

	// Seed the tier threshold table on first boot
	if err := app.ReputationService.SeedThresholds(bootCtx); err != nil {
		log.Fatalf("❌ Failed to seed tier thresholds: %v", err)
	}

	// Optional demo dataset for local development
	if cfg.FeatureDemoSeed {
		if err := testdata.Seed(bootCtx, app.DB.Ent, testdata.DefaultSeedConfig()); err != nil {
			log.Printf("⚠️  Demo seed failed: %v", err)
		} else {
			log.Printf("✅ Demo dataset seeded")
		}
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	tierRateLimiter := custommiddleware.NewTierRateLimiter()       // Tier-based rate limiting for authenticated users
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // 3 req/min for registration
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Root and health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "ChainAdvisory API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := app.DB.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := app.Cache.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	jwtAuth := custommiddleware.JWTMiddlewareWithBlacklist(cfg.JWTSecret, app.TokenBlacklist, app.DB.Ent)

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", app.AuthHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", app.AuthHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", app.AuthHandler.Me, jwtAuth)
		authRoutes.POST("/logout", app.AuthHandler.Logout, jwtAuth)
		authRoutes.GET("/verify-email/:token", app.AuthHandler.VerifyEmail)
		authRoutes.POST("/resend-verification", app.AuthHandler.ResendVerificationEmail, jwtAuth)
		authRoutes.POST("/forgot-password", app.AuthHandler.ForgotPassword)
		authRoutes.POST("/reset-password", app.AuthHandler.ResetPassword)
	}

	// Public pricing routes
	v1.GET("/pricing", app.BillingHandler.GetPricing)
	v1.GET("/consultations/quote", app.ConsultationHandler.Quote)
	v1.GET("/reports/quote", app.ReportHandler.Quote)

	// Stripe webhook with higher rate limit
	v1.POST("/webhook/stripe", app.BillingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(jwtAuth)
	protected.Use(tierRateLimiter.Middleware())
	{
		// User routes
		userGroup := protected.Group("/user")
		{
			userGroup.PATCH("/profile", app.UserHandler.UpdateProfile)
			userGroup.GET("/quota", app.UserHandler.GetQuota)
			userGroup.GET("/credits", app.UserHandler.GetCredits)
			userGroup.GET("/tier-progress", app.UserHandler.GetTierProgress)
			userGroup.GET("/achievements", app.ReputationHandler.ListAchievements)
			userGroup.GET("/notifications", app.NotificationHandler.Dashboard)
			userGroup.DELETE("/account", app.UserHandler.DeleteAccount)
		}

		// Consultation routes (booking requires email verification)
		consultationGroup := protected.Group("/consultations")
		{
			consultationGroup.POST("", app.ConsultationHandler.Book, custommiddleware.RequireEmailVerified(app.DB.Ent))
			consultationGroup.GET("", app.ConsultationHandler.List)
			consultationGroup.POST("/draft", app.ConsultationHandler.SaveDraft)
			consultationGroup.GET("/draft", app.ConsultationHandler.TakeDraft)
			consultationGroup.GET("/:id", app.ConsultationHandler.Get)
			consultationGroup.POST("/:id/cancel", app.ConsultationHandler.Cancel)
		}

		// Report routes (requesting requires email verification)
		reportGroup := protected.Group("/reports")
		{
			reportGroup.POST("", app.ReportHandler.Request, custommiddleware.RequireEmailVerified(app.DB.Ent))
			reportGroup.GET("", app.ReportHandler.List)
			reportGroup.GET("/:id", app.ReportHandler.Get)
			reportGroup.POST("/:id/cancel", app.ReportHandler.Cancel)
		}

		// Project routes (submission requires email verification)
		projectGroup := protected.Group("/projects")
		{
			projectGroup.POST("", app.ProjectHandler.Submit, custommiddleware.RequireEmailVerified(app.DB.Ent))
			projectGroup.GET("", app.ProjectHandler.List)
			projectGroup.GET("/:id", app.ProjectHandler.Get)
			projectGroup.POST("/:id/withdraw", app.ProjectHandler.Withdraw)
		}

		// Expert routes
		expertGroup := protected.Group("/experts")
		{
			expertGroup.POST("/apply", app.ExpertHandler.Apply, custommiddleware.RequireEmailVerified(app.DB.Ent))
			expertGroup.GET("/applications/:id", app.ExpertHandler.Get)
			expertGroup.GET("/assignments", app.ProjectHandler.MyAssignments)
			expertGroup.POST("/assignments/:id/start", app.ProjectHandler.StartAssignment)
			expertGroup.POST("/assignments/:id/complete", app.ProjectHandler.CompleteAssignment)
		}

		// Billing routes (checkout requires email verification)
		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", app.BillingHandler.CreateCheckout, custommiddleware.RequireEmailVerified(app.DB.Ent))
			billingGroup.POST("/portal", app.BillingHandler.CreatePortalSession)
			billingGroup.GET("/subscription", app.BillingHandler.GetSubscription)
		}

		// Admin routes (require admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(app.DB.Ent))
		{
			adminGroup.GET("/stats", app.AdminHandler.GetStats)
			adminGroup.GET("/users", app.AdminHandler.ListUsers)
			adminGroup.GET("/users/:id", app.AdminHandler.GetUser)
			adminGroup.PATCH("/users/:id", app.AdminHandler.UpdateUser)
			adminGroup.DELETE("/users/:id", app.AdminHandler.SuspendUser)
			adminGroup.POST("/users/:id/reactivate", app.AdminHandler.ReactivateUser)

			adminGroup.GET("/audit-logs", app.AdminHandler.GetAuditLogs)
			adminGroup.GET("/notifications", app.NotificationHandler.AdminSummary)
			adminGroup.GET("/notifications/history", app.NotificationHandler.History)

			adminGroup.GET("/exports/users", app.AdminHandler.ExportUsers)
			adminGroup.GET("/exports/consultations", app.AdminHandler.ExportConsultations)

			adminGroup.GET("/backups", app.AdminHandler.ListBackups)
			adminGroup.POST("/backups", app.AdminHandler.CreateBackup)

			adminGroup.POST("/consultations/:id/confirm", app.ConsultationHandler.Confirm)
			adminGroup.POST("/consultations/:id/complete", app.ConsultationHandler.Complete)
			adminGroup.POST("/reports/:id/start", app.ReportHandler.Start)
			adminGroup.POST("/reports/:id/deliver", app.ReportHandler.Deliver)

			adminGroup.GET("/expert-applications", app.ExpertHandler.ListPending)
			adminGroup.POST("/expert-applications/:id/review", app.ExpertHandler.Review)
			adminGroup.POST("/projects/:id/assign", app.ProjectHandler.AssignExpert)

			adminGroup.POST("/users/:id/achievements", app.ReputationHandler.AwardAchievement)
			adminGroup.POST("/users/:id/points", app.ReputationHandler.AdjustPoints)

			adminGroup.GET("/tiers/thresholds", app.ReputationHandler.ListThresholds)
			adminGroup.PATCH("/tiers/thresholds/:tier", app.ReputationHandler.UpdateThreshold)
			adminGroup.POST("/tiers/resync", app.ReputationHandler.ResyncTiers)
		}
	}

	// Start scheduled jobs
	if err := app.CronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	app.CronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 ChainAdvisory API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), register (3/min), webhook (100/min)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
