package savings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Get("/savings", func(c *fiber.Ctx) error {
		number := c.Locals("account").(int64)
		progress, err := service.Progress(number)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(progress)
	})

	r.Post("/savings", func(c *fiber.Ctx) error {
		type Req struct {
			Goal decimal.Decimal `json:"goal"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		number := c.Locals("account").(int64)

		if err := service.SetGoal(number, body.Goal); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "goal set"})
	})

	r.Delete("/savings", func(c *fiber.Ctx) error {
		number := c.Locals("account").(int64)
		if err := service.ClearGoal(number); err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(fiber.Map{"status": "goal cleared"})
	})
}
