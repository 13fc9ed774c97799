package middleware

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/auth"
)

// RequireSession rejects requests when nobody is logged in. This is the
// server-side counterpart of the original protected-page redirect.
func RequireSession(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authSvc.IsLoggedIn() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

// RedirectIfLoggedIn rejects login/register attempts while a session is
// already active, mirroring the original auth-page redirect.
func RedirectIfLoggedIn(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authSvc.IsLoggedIn() {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Already logged in",
			})
		}
		return c.Next()
	}
}
