package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jebshit_backend/internals/configs"
	authModel "jebshit_backend/internals/features/users/auth/model"
	authMiddleware "jebshit_backend/internals/middlewares/auth"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.UserModel{}, &authModel.TokenBlacklist{}))

	ctrl := NewAuthController(db)
	app := fiber.New()
	app.Post("/auth/register", ctrl.Register)
	app.Post("/auth/login", ctrl.Login)
	app.Post("/auth/logout", ctrl.Logout)
	app.Get("/auth/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
	return app, db
}

func call(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp, out
}

func register(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()
	resp, _ := call(t, app, "POST", "/auth/register", fiber.Map{
		"user_name": name, "email": email, "password": password,
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	app, _ := newAuthApp(t)

	register(t, app, "Admin", "admin@jebshit.org", "secret-123")

	resp, _ := call(t, app, "POST", "/auth/register", fiber.Map{
		"user_name": "Other", "email": "Admin@Jebshit.org", "password": "secret-456",
	}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode, "email match is case-insensitive")
}

func TestLoginHappyPath(t *testing.T) {
	app, _ := newAuthApp(t)
	register(t, app, "Admin", "admin@jebshit.org", "secret-123")

	resp, out := call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "admin@jebshit.org", "password": "secret-123",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "editor", user["role"])

	var hasRefresh bool
	for _, c := range resp.Cookies() {
		if c.Name == "refresh_token" && c.Value != "" {
			hasRefresh = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, hasRefresh, "refresh token cookie set")
}

func TestLoginFailureMapping(t *testing.T) {
	app, db := newAuthApp(t)
	register(t, app, "Admin", "admin@jebshit.org", "secret-123")

	// unknown email
	resp, _ := call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "ghost@jebshit.org", "password": "secret-123",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// malformed email
	resp, _ = call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "not-an-email", "password": "x",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// wrong password
	resp, _ = call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "admin@jebshit.org", "password": "wrong",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// disabled account
	require.NoError(t, db.Model(&authModel.UserModel{}).
		Where("user_email = ?", "admin@jebshit.org").
		Update("user_is_active", false).Error)
	resp, _ = call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "admin@jebshit.org", "password": "secret-123",
	}, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestMeAndLogoutBlacklist(t *testing.T) {
	app, _ := newAuthApp(t)
	register(t, app, "Admin", "admin@jebshit.org", "secret-123")

	_, out := call(t, app, "POST", "/auth/login", fiber.Map{
		"email": "admin@jebshit.org", "password": "secret-123",
	}, nil)
	token := out["data"].(map[string]any)["access_token"].(string)
	bearer := map[string]string{"Authorization": "Bearer " + token}

	resp, out := call(t, app, "GET", "/auth/me", nil, bearer)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@jebshit.org", out["data"].(map[string]any)["email"])

	resp, _ = call(t, app, "POST", "/auth/logout", nil, bearer)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, "GET", "/auth/me", nil, bearer)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "blacklisted token rejected")
}

func TestMeWithoutToken(t *testing.T) {
	app, _ := newAuthApp(t)
	resp, _ := call(t, app, "GET", "/auth/me", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
