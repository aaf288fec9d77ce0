// Package wallet exposes the ledger over HTTP for the logged-in account.
package wallet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"bankroll/internal/ledger"
)

func RegisterRoutes(r fiber.Router, service *ledger.Service) {

	r.Post("/wallet/deposit", func(c *fiber.Ctx) error {
		type Req struct {
			Amount decimal.Decimal `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		balance, err := service.Deposit(number, body.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"balance": balance})
	})

	r.Post("/wallet/withdraw", func(c *fiber.Ctx) error {
		type Req struct {
			Amount decimal.Decimal `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		balance, err := service.Withdraw(number, body.Amount)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"balance": balance})
	})

	r.Post("/wallet/transfer", func(c *fiber.Ctx) error {
		type Req struct {
			To     int64           `json:"to"`
			Amount decimal.Decimal `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		if err := service.Transfer(number, body.To, body.Amount); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "transferred"})
	})

	r.Get("/wallet/balance", func(c *fiber.Ctx) error {
		number := c.Locals("account").(int64)
		balance, err := service.Balance(number)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(fiber.Map{"balance": balance})
	})

	r.Get("/wallet/history", func(c *fiber.Ctx) error {
		number := c.Locals("account").(int64)
		history, err := service.History(number)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(history)
	})
}
