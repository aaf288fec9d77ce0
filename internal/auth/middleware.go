package auth

import (
	"github.com/gofiber/fiber/v2"

	"bankroll/internal/session"
)

// SessionGuard resolves X-Session-Token and stores the account number in
// c.Locals("account").
func SessionGuard(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Session-Token")
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		number, err := store.Lookup(c.Context(), token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		c.Locals("account", number)
		return c.Next()
	}
}

func AdminGuard(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Admin-Token") != token {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
