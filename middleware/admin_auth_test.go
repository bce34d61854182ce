package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"devfair/site-api/internal/auth"
)

func newGatedApp(tokens *auth.TokenService, handlerRan *bool) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only", AdminAuth(tokens), func(c *fiber.Ctx) error {
		*handlerRan = true
		return c.Status(fiber.StatusNoContent).Send(nil)
	})
	return app
}

func TestAdminAuth_RejectsWithoutRunningHandler(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Minute)
	expired := auth.NewTokenService("secret", -time.Second)
	expiredToken, err := expired.Issue("admin@devfair.io")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"malformed token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expiredToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handlerRan := false
			app := newGatedApp(tokens, &handlerRan)

			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.False(t, handlerRan, "handler must not run on auth failure")
		})
	}
}

func TestAdminAuth_AcceptsValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Minute)
	token, err := tokens.Issue("admin@devfair.io")
	require.NoError(t, err)

	handlerRan := false
	app := fiber.New()
	app.Get("/admin-only", AdminAuth(tokens), func(c *fiber.Ctx) error {
		handlerRan = true
		require.Equal(t, "admin@devfair.io", c.Locals(LocalAdminSubject))
		require.Equal(t, auth.RoleAdmin, c.Locals(LocalAdminRole))
		return c.Status(fiber.StatusNoContent).Send(nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.True(t, handlerRan)
}
