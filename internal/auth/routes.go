package auth

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/auth/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}
		if body.Username == "" || body.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "username and password required"})
		}

		acc, err := service.Register(body.Username, body.Password)
		if err != nil {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{
			"account_number": acc.Number,
			"username":       acc.Username,
		})
	})

	r.Post("/auth/login", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		token, err := service.Login(c.Context(), body.Username, body.Password)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"token": token})
	})

	r.Post("/auth/logout", func(c *fiber.Ctx) error {
		service.Logout(c.Context(), c.Get("X-Session-Token"))
		return c.JSON(fiber.Map{"status": "logged out"})
	})
}
