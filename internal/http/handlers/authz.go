package handlers

import (
	"feedbackhub/internal/auth"
	applog "feedbackhub/internal/log"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth guards a route with bearer-token identity. Missing header,
// wrong scheme, garbage or forged tokens all resolve to a plain 401.
func RequireAuth(tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := auth.FromHeader(c.Get("Authorization"))
		if err != nil {
			applog.Security(c, "access.denied.token", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			applog.Security(c, "access.denied.token", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals("claims", claims)
		c.Locals("emp_id", claims.EmpID)
		return c.Next()
	}
}

// ClaimsFrom returns the identity RequireAuth stashed on the request.
func ClaimsFrom(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals("claims").(*auth.Claims)
	return claims
}
