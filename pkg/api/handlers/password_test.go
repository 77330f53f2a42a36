package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/config"
	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/auth"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/email"
)

func setupPasswordTestHandler(t *testing.T) (*AuthHandler, *ent.Client, *cache.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))

	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	handler := &AuthHandler{
		db: client,
		config: &config.Config{
			JWTSecret:          "test-secret-key",
			JWTExpirationHours: 24,
		},
		cache:        cacheClient,
		auditLogger:  audit.NewService(client),
		emailService: email.NewService("noreply@test.com", "ChainAdvisory Test", "http://localhost:3001", "", nil),
		validator:    validator.New(),
	}

	return handler, client, cacheClient
}

func createPasswordTestUser(t *testing.T, client *ent.Client, emailAddr, password string) *ent.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(emailAddr).
		SetName("Test User").
		SetPasswordHash(hash).
		SetEmailVerified(true).
		Save(context.Background())
	require.NoError(t, err)

	return u
}

func resetTokenKey(token string) string {
	hash := sha256.Sum256([]byte(token))
	return "password_reset:" + hex.EncodeToString(hash[:])
}

func TestForgotPassword(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	createPasswordTestUser(t, client, "reset@test.com", "oldpassword123")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		strings.NewReader(`{"email": "reset@test.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "If an account exists with this email, you will receive a password reset link", response["message"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		strings.NewReader(`{"email": "nobody@test.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ForgotPassword(c)

	// Response is identical whether or not the account exists
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "If an account exists with this email, you will receive a password reset link", response["message"])
}

func TestForgotPasswordInvalidEmail(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		strings.NewReader(`{"email": "not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response["error"])
}

func TestResetPassword(t *testing.T) {
	handler, client, cacheClient := setupPasswordTestHandler(t)
	defer client.Close()

	u := createPasswordTestUser(t, client, "reset@test.com", "oldpassword123")

	ctx := context.Background()
	resetToken := "valid-reset-token"
	require.NoError(t, cacheClient.Set(ctx, resetTokenKey(resetToken), fmt.Sprintf("%d", u.ID), time.Hour))

	e := echo.New()
	body := fmt.Sprintf(`{"token": "%s", "new_password": "newpassword456"}`, resetToken)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Password reset successfully", response["message"])

	// New password works, old one does not
	updated, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "newpassword456"))
	assert.False(t, auth.CheckPassword(updated.PasswordHash, "oldpassword123"))

	// Token is single-use
	_, err = cacheClient.Get(ctx, resetTokenKey(resetToken))
	assert.Error(t, err)
}

func TestResetPasswordInvalidToken(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password",
		strings.NewReader(`{"token": "bogus-token", "new_password": "newpassword456"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid_token", response["error"])
}

func TestResetPasswordExpiredToken(t *testing.T) {
	handler, client, cacheClient := setupPasswordTestHandler(t)
	defer client.Close()

	u := createPasswordTestUser(t, client, "reset@test.com", "oldpassword123")

	ctx := context.Background()
	resetToken := "expired-token"
	require.NoError(t, cacheClient.Set(ctx, resetTokenKey(resetToken), fmt.Sprintf("%d", u.ID), time.Hour))
	require.NoError(t, cacheClient.Delete(ctx, resetTokenKey(resetToken)))

	e := echo.New()
	body := fmt.Sprintf(`{"token": "%s", "new_password": "newpassword456"}`, resetToken)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetPasswordWeakPassword(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password",
		strings.NewReader(`{"token": "some-token", "new_password": "short"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response["error"])
}

func TestResetPasswordTokenReuse(t *testing.T) {
	handler, client, cacheClient := setupPasswordTestHandler(t)
	defer client.Close()

	u := createPasswordTestUser(t, client, "reset@test.com", "oldpassword123")

	ctx := context.Background()
	resetToken := "one-time-token"
	require.NoError(t, cacheClient.Set(ctx, resetTokenKey(resetToken), fmt.Sprintf("%d", u.ID), time.Hour))

	e := echo.New()
	body := fmt.Sprintf(`{"token": "%s", "new_password": "newpassword456"}`, resetToken)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.ResetPassword(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	// Second attempt with the same token fails
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, handler.ResetPassword(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetPasswordMissingToken(t *testing.T) {
	handler, client, _ := setupPasswordTestHandler(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password",
		strings.NewReader(`{"new_password": "newpassword456"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
