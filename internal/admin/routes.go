// Package admin serves the operator views: every account at a glance and
// one account in full.
package admin

import (
	"github.com/gofiber/fiber/v2"

	"bankroll/internal/account"
)

func RegisterRoutes(r fiber.Router, repo *account.Repo) {

	r.Get("/accounts", func(c *fiber.Ctx) error {
		accounts := repo.List()
		out := make([]fiber.Map, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, fiber.Map{
				"account_number": a.Number,
				"username":       a.Username,
				"balance":        a.Balance,
				"transactions":   len(a.History),
			})
		}
		return c.JSON(out)
	})

	r.Get("/accounts/:number", func(c *fiber.Ctx) error {
		number, err := c.ParamsInt("number")
		if err != nil {
			return c.SendStatus(400)
		}
		a, err := repo.Get(int64(number))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(fiber.Map{
			"account_number": a.Number,
			"username":       a.Username,
			"balance":        a.Balance,
			"savings_goal":   a.Goal,
			"history":        a.History,
		})
	})
}
