package casino

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/casino/slots", func(c *fiber.Ctx) error {
		type Req struct {
			Stake      decimal.Decimal `json:"stake"`
			ClientSeed string          `json:"client_seed"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		result, err := service.PlaySlots(number, body.Stake, body.ClientSeed)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	})

	r.Post("/casino/blackjack", func(c *fiber.Ctx) error {
		type Req struct {
			Stake      decimal.Decimal `json:"stake"`
			ClientSeed string          `json:"client_seed"`
			Actions    []string        `json:"actions"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		actions := make([]Action, 0, len(body.Actions))
		for _, a := range body.Actions {
			act := Action(a)
			if act != ActionHit && act != ActionDouble && act != ActionStand {
				return c.Status(400).JSON(fiber.Map{"error": ErrBadAction.Error()})
			}
			actions = append(actions, act)
		}

		result, err := service.PlayBlackjack(number, body.Stake, body.ClientSeed, NewScriptedDecisions(actions...))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	})

	r.Post("/casino/roulette", func(c *fiber.Ctx) error {
		type Req struct {
			Stake      decimal.Decimal  `json:"stake"`
			ClientSeed string           `json:"client_seed"`
			Number     *int             `json:"number"`
			Category   RouletteCategory `json:"category"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		result, err := service.PlayRoulette(number, body.Stake, body.ClientSeed, RouletteBet{
			Number:   body.Number,
			Category: body.Category,
		})
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	})

	r.Post("/casino/baccarat", func(c *fiber.Ctx) error {
		type Req struct {
			Stake      decimal.Decimal `json:"stake"`
			ClientSeed string          `json:"client_seed"`
			Side       Side            `json:"side"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		result, err := service.PlayBaccarat(number, body.Stake, body.ClientSeed, body.Side)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	})

	r.Get("/casino/leaderboard", func(c *fiber.Ctx) error {
		return c.JSON(service.Leaderboard(10))
	})

	r.Get("/casino/fairness", func(c *fiber.Ctx) error {
		hash, rtp := service.Fairness()
		return c.JSON(fiber.Map{
			"server_seed_hash": hash,
			"rtp":              rtp,
		})
	})
}
