package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/infrastructure/backend"
)

// ForwardAuthorization puts the caller's Authorization header on the user
// context so backend requests made for it carry the same credentials.
func ForwardAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
			c.SetUserContext(backend.WithAuthorization(c.UserContext(), auth))
		}
		return c.Next()
	}
}
