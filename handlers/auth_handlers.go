package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"devfair/site-api/config"
	"devfair/site-api/middleware"
	"devfair/site-api/utils"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed admin token.
type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyResponse echoes the verified token identity.
type VerifyResponse struct {
	OK   bool   `json:"ok"`
	Sub  string `json:"sub"`
	Role string `json:"role"`
}

// Login godoc
// @Summary Admin login
// @Description Validates admin credentials against the admin_login database function and issues a bearer token.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/login [post]
func (h *ApplicationHandler) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	// admin_login(email, pass) returns a bare boolean. The password
	// never touches this process beyond the RPC call. Rpc reports
	// failures through the client's ClientError field and never clears
	// it on success, so each login gets its own short-lived client
	// rather than sharing one across requests.
	rpc := config.NewPostgrest(h.Cfg)
	result := rpc.Rpc("admin_login", "", map[string]string{
		"email": payload.Email,
		"pass":  payload.Password,
	})
	if rpc.ClientError != nil {
		h.Logger.Errorf("admin_login RPC failed: %v", rpc.ClientError)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Credential check failed")
	}

	if strings.TrimSpace(result) != "true" {
		return utils.RespondWithError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.Tokens.Issue(payload.Email)
	if err != nil {
		h.Logger.Errorf("Error signing admin token: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not issue token")
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{Token: token})
}

// Verify reports the identity carried by an already-verified token. The
// auth middleware has done the actual verification by the time this
// runs.
func (h *ApplicationHandler) Verify(c *fiber.Ctx) error {
	sub, _ := c.Locals(middleware.LocalAdminSubject).(string)
	role, _ := c.Locals(middleware.LocalAdminRole).(string)
	return c.Status(fiber.StatusOK).JSON(VerifyResponse{OK: true, Sub: sub, Role: role})
}
