package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/audit"
	"github.com/chainadvisory/chainadvisory-api/pkg/export"
)

func setupTestAdmin(t *testing.T) (*ent.Client, *AdminHandler, *ent.User, *ent.User) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	ctx := context.Background()

	admin, err := client.User.Create().
		SetEmail("admin@test.com").
		SetName("Admin User").
		SetPasswordHash("hashed_password").
		SetRole(user.RoleAdmin).
		SetEmailVerified(true).
		Save(ctx)
	require.NoError(t, err)

	regular, err := client.User.Create().
		SetEmail("user@test.com").
		SetName("Regular User").
		SetPasswordHash("hashed_password").
		SetRole(user.RoleUser).
		SetSubmitterTier(user.SubmitterTierVerified).
		SetMonthlyProjectLimit(10).
		SetProjectsUsed(3).
		Save(ctx)
	require.NoError(t, err)

	handler := NewAdminHandler(client, audit.NewService(client), export.NewService(client, t.TempDir()), nil)

	return client, handler, admin, regular
}

func TestListUsers(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?page=1&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", admin.ID)

	err := handler.ListUsers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	users := response["users"].([]interface{})
	assert.Len(t, users, 2)

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(t, 1.0, pagination["page"])
	assert.Equal(t, 10.0, pagination["limit"])
	assert.Equal(t, 2.0, pagination["total"])
}

func TestListUsersWithFilters(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?tier=verified", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", admin.ID)

	err := handler.ListUsers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	users := response["users"].([]interface{})
	assert.Len(t, users, 1)

	firstUser := users[0].(map[string]interface{})
	assert.Equal(t, "verified", firstUser["submitter_tier"])
}

func TestGetUser(t *testing.T) {
	client, handler, admin, regular := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", regular.ID))
	c.Set("user_id", admin.ID)

	err := handler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, regular.Email, response["email"])
	assert.Equal(t, regular.Name, response["name"])
	assert.Equal(t, "verified", response["submitter_tier"])
	assert.Equal(t, 3.0, response["projects_used"])
}

func TestGetUserNotFound(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")
	c.Set("user_id", admin.ID)

	err := handler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserRole(t *testing.T) {
	client, handler, admin, regular := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	updateJSON := `{"role": "expert", "email_verified": true}`

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/2", strings.NewReader(updateJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", regular.ID))
	c.Set("user_id", admin.ID)

	err := handler.UpdateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	updated, err := client.User.Get(context.Background(), regular.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleExpert, updated.Role)
	assert.True(t, updated.EmailVerified)
}

func TestUpdateUserInvalidRole(t *testing.T) {
	client, handler, admin, regular := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/2", strings.NewReader(`{"role": "overlord"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", regular.ID))
	c.Set("user_id", admin.ID)

	err := handler.UpdateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuspendUser(t *testing.T) {
	client, handler, admin, regular := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", regular.ID))
	c.Set("user_id", admin.ID)

	err := handler.SuspendUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	suspended, err := client.User.Get(context.Background(), regular.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusSuspended, suspended.Status)
}

func TestSuspendUserCannotSuspendSelf(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", admin.ID))
	c.Set("user_id", admin.ID)

	err := handler.SuspendUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuspendUserCannotSuspendSuperadmin(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	super, err := client.User.Create().
		SetEmail("root@test.com").
		SetName("Root").
		SetPasswordHash("hashed_password").
		SetRole(user.RoleSuperadmin).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", super.ID))
	c.Set("user_id", admin.ID)

	err = handler.SuspendUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReactivateUser(t *testing.T) {
	client, handler, admin, regular := setupTestAdmin(t)
	defer client.Close()

	_, err := client.User.UpdateOneID(regular.ID).
		SetStatus(user.StatusSuspended).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users/2/reactivate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", regular.ID))
	c.Set("user_id", admin.ID)

	err = handler.ReactivateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	reactivated, err := client.User.Get(context.Background(), regular.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, reactivated.Status)
}

func TestGetStats(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", admin.ID)

	err := handler.GetStats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	users := response["users"].(map[string]interface{})
	assert.Equal(t, 2.0, users["total"])
	assert.Equal(t, 1.0, users["verified"])
}

func TestCreateBackupDisabled(t *testing.T) {
	client, handler, admin, _ := setupTestAdmin(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/backups", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", admin.ID)

	err := handler.CreateBackup(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
