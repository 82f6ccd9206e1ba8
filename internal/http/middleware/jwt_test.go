package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-promo/internal/config"
	"backend-promo/internal/http/middleware"
)

func testApp() *fiber.App {
	app := fiber.New()

	api := app.Group("/api", middleware.JWTAuth())
	api.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals("email"),
			"role":  c.Locals("role"),
		})
	})
	api.Get("/admin", middleware.RoleAuth("super_user"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	return app
}

func TestJWTAuthMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	req := httptest.NewRequest("GET", "/api/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTAuthBadFormat(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	token, err := config.GenerateToken(1, "Editor", "editor@tanyo.id", "editor")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleAuthForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	token, err := config.GenerateToken(1, "Editor", "editor@tanyo.id", "editor")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRoleAuthAllowed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	token, err := config.GenerateToken(1, "Admin", "admin@tanyo.id", "super_user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
