package controller

import (
	"net/http"
	"testing"
	"time"

	"dinedesk-be/internal/config"
	"dinedesk-be/internal/pkg/serverutils"
	"dinedesk-be/internal/pkg/testdb"
	"dinedesk-be/internal/repository/unitofwork"
	"dinedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testdb.New(t)
	authService := service.NewAuthService(unitofwork.NewRepositoryFactory(db), config.AuthConfig{
		JwtSecret: testSecret,
		TokenTTL:  time.Hour,
	})

	app := newApp()
	NewAuthController(authService, false).RegisterRoutes(app.Group("/api"))
	return app
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignupAndLogin(t *testing.T) {
	app := newAuthApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":             "Ana Lima",
		"email":            "Ana@Example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := cookieNamed(resp, serverutils.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, cookie.Value, body.Data.AccessToken)
	assert.Equal(t, "Ana Lima", body.Data.User.Name)
}

func TestSignup_Validation(t *testing.T) {
	app := newAuthApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":             "Ana",
		"email":            "ana@example.com",
		"password":         "secret1",
		"confirm_password": "secret2",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body serverutils.Response
	decode(t, resp, &body)
	assert.Equal(t, "confirm_password must match password", body.Message)

	resp = do(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newAuthApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body serverutils.Response
	decode(t, resp, &body)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestLogout_ClearsCookie(t *testing.T) {
	app := newAuthApp(t)

	resp := do(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := cookieNamed(resp, serverutils.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
