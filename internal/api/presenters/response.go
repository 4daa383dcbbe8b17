package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// The API's wire contract uses bare bodies: arrays for lists, {"message": ...}
// for write acknowledgements and {"error": ...} for failures. No envelope.

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
