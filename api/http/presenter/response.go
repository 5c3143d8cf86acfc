package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Result wraps a successful payload in the {"result": ...} envelope.
func Result(c *fiber.Ctx, status int, v any) error {
	return JSON(c, status, fiber.Map{"result": v})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
