package handlers

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainadvisory/chainadvisory-api/config"
	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/api/errors"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/auth"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/email"
	"github.com/chainadvisory/chainadvisory-api/pkg/models"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	cache        *cache.Client
	auditLogger  *audit.Service
	emailService *email.Service
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, cache *cache.Client, auditLogger *audit.Service, emailService *email.Service) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		blacklist:    blacklist,
		cache:        cache,
		auditLogger:  auditLogger,
		emailService: emailService,
		validator:    validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "password_hashing_error",
		})
	}

	verificationToken, err := generateVerificationToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	create := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		SetLastResetAt(time.Now()).
		SetEmailVerificationToken(verificationToken).
		SetEmailVerificationTokenExpiresAt(time.Now().Add(24 * time.Hour))

	if req.Company != "" {
		create = create.SetCompany(req.Company)
	}

	newUser, err := create.Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "user_creation_error",
		})
	}

	// Log registration event
	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserRegister(context.Background(), newUser.ID, ipAddress, userAgent)

	// Send verification email (async)
	go h.emailService.SendVerificationEmail(context.Background(), newUser.Email, newUser.Name, verificationToken)

	token, err := auth.GenerateJWT(
		newUser.ID,
		newUser.Email,
		string(newUser.SubmitterTier),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  toUserInfo(newUser),
	})
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	if u.Status == user.StatusSuspended {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "account_suspended",
			Message: "This account has been suspended",
		})
	}

	// Best effort, login proceeds even if this write fails
	_, _ = h.db.User.UpdateOneID(u.ID).
		SetLastLoginAt(time.Now()).
		Save(ctx)

	// Log login event
	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserLogin(context.Background(), u.ID, ipAddress, userAgent)

	token, err := auth.GenerateJWT(
		u.ID,
		u.Email,
		string(u.SubmitterTier),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(u),
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "user_not_found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}

// Logout revokes the current JWT token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token found in request",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Blacklist TTL matches the JWT expiration
	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "logout_error",
			Message: "Failed to revoke token",
		})
	}

	if userID > 0 {
		ipAddress, userAgent := audit.GetRequestContext(c)
		go h.auditLogger.LogUserLogout(context.Background(), userID, ipAddress, userAgent)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// VerifyEmail verifies user's email with token
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Verification token is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailVerificationTokenEQ(token)).
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired verification token",
		})
	}

	if u.EmailVerificationTokenExpiresAt != nil && time.Now().After(*u.EmailVerificationTokenExpiresAt) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "expired_token",
			Message: "Verification token has expired",
		})
	}

	if u.EmailVerified {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Email already verified",
		})
	}

	_, err = h.db.User.UpdateOneID(u.ID).
		SetEmailVerified(true).
		ClearEmailVerificationToken().
		ClearEmailVerificationTokenExpiresAt().
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "verification_failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Email verified successfully",
	})
}

// ResendVerificationEmail resends verification email
func (h *AuthHandler) ResendVerificationEmail(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "user_not_found",
		})
	}

	if u.EmailVerified {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "already_verified",
			Message: "Email is already verified",
		})
	}

	verificationToken, err := generateVerificationToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	_, err = h.db.User.UpdateOneID(userID).
		SetEmailVerificationToken(verificationToken).
		SetEmailVerificationTokenExpiresAt(time.Now().Add(24 * time.Hour)).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "update_failed",
		})
	}

	go h.emailService.SendVerificationEmail(context.Background(), u.Email, u.Name, verificationToken)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Verification email sent",
	})
}

// ForgotPassword generates a password reset token and sends reset email
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid email address",
		})
	}

	u, err := h.db.User.Query().
		Where(user.EmailEQ(req.Email)).
		Only(ctx)
	if err != nil {
		// Do not reveal whether the email exists
		return c.JSON(http.StatusOK, map[string]string{
			"message": "If an account exists with this email, you will receive a password reset link",
		})
	}

	resetToken, err := generatePasswordResetToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_generation_error",
			Message: "Failed to generate reset token",
		})
	}

	// Store token hash in Redis with 1-hour expiration
	tokenHash := sha256.Sum256([]byte(resetToken))
	tokenKey := fmt.Sprintf("password_reset:%s", hex.EncodeToString(tokenHash[:]))

	if err := h.cache.Set(ctx, tokenKey, fmt.Sprintf("%d", u.ID), time.Hour); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "cache_error",
			Message: "Failed to store reset token",
		})
	}

	go h.emailService.SendPasswordResetEmail(context.Background(), u.Email, u.Name, resetToken)

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserPasswordChange(context.Background(), u.ID, ipAddress, userAgent)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "If an account exists with this email, you will receive a password reset link",
	})
}

// ResetPassword validates the reset token and updates the user's password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Password must be at least 8 characters",
		})
	}

	tokenHash := sha256.Sum256([]byte(req.Token))
	tokenKey := fmt.Sprintf("password_reset:%s", hex.EncodeToString(tokenHash[:]))

	userIDStr, err := h.cache.Get(ctx, tokenKey)
	if err != nil || userIDStr == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired reset token",
		})
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "invalid_user_id",
			Message: "Invalid user ID in token",
		})
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "hashing_error",
			Message: "Failed to hash password",
		})
	}

	_, err = h.db.User.UpdateOneID(userID).
		SetPasswordHash(hashedPassword).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "update_error",
			Message: "Failed to update password",
		})
	}

	// One-time use
	h.cache.Delete(ctx, tokenKey)

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserPasswordChange(context.Background(), userID, ipAddress, userAgent)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

func toUserInfo(u *ent.User) *models.UserInfo {
	return &models.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Company:       u.Company,
		Role:          string(u.Role),
		SubmitterTier: string(u.SubmitterTier),
		ProjectsUsed:  u.ProjectsUsed,
		ProjectLimit:  u.MonthlyProjectLimit,
		EmailVerified: u.EmailVerified,
	}
}

// generateVerificationToken generates a random token for email verification
func generateVerificationToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// generatePasswordResetToken generates a random token for password reset
func generatePasswordResetToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
