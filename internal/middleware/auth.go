package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/types"
)

// AccountKey is the fiber.Ctx Locals key holding the authenticated account.
const AccountKey = "account"

// RequireAuth validates the session cookie on every request and stores the
// resulting account in the request context. The Authorizer client is
// initialized lazily from the first request's protocol and host.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"user"}, "authorization.user")
	}
}

// authorize performs the session validation
func authorize(c *fiber.Ctx, cfg *config.Config, roles []string, errorType string) error {
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	account, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	c.Locals(AccountKey, account)

	return c.Next()
}
