package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shophood/internal/domain"
	applog "shophood/internal/log"
	"shophood/internal/services"
)

// RequireUser enforces a logged-in session and stashes the user in Locals.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return jsonErr(c, fiber.StatusUnauthorized, "login required")
		}
		u, ok := auth.CurrentUser(sid)
		if !ok {
			return jsonErr(c, fiber.StatusUnauthorized, "login required")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireBusiness gates business-only routes. Must run after RequireUser.
func RequireBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, _ := c.Locals("user").(*domain.User)
		if u == nil || u.Role != domain.RoleBusiness {
			applog.Security(c, "access.denied.business", nil)
			return jsonErr(c, fiber.StatusForbidden, "business account required")
		}
		return c.Next()
	}
}

// RequirePremium gates analytics and advertising. Must run after
// RequireBusiness.
func RequirePremium() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, _ := c.Locals("user").(*domain.User)
		if u == nil || u.Plan != domain.PlanPremium {
			applog.Security(c, "access.denied.premium", nil)
			return jsonErr(c, fiber.StatusForbidden, "premium plan required")
		}
		return c.Next()
	}
}
