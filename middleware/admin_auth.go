package middleware

import (
	"github.com/gofiber/fiber/v2"

	"devfair/site-api/internal/auth"
	"devfair/site-api/utils"
)

// Locals keys set by AdminAuth for downstream handlers.
const (
	LocalAdminSubject = "admin_sub"
	LocalAdminRole    = "admin_role"
)

// AdminAuth gates admin-only routes. It extracts the bearer token,
// verifies it, and aborts with a uniform 401 on any failure before the
// handler runs. Missing, malformed and expired tokens are not told
// apart.
func AdminAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		claims, err := tokens.Validate(token)
		if err != nil {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(LocalAdminSubject, claims.Subject)
		c.Locals(LocalAdminRole, claims.Role)
		return c.Next()
	}
}
