package utils

import "github.com/gofiber/fiber/v2"

// Message writes {"message": message}.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// MessageWith writes {"message": message} merged with extra fields.
func MessageWith(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for key, value := range extra {
		body[key] = value
	}
	return c.Status(status).JSON(body)
}

// Error writes an error body. Errors share the message shape of successes.
func Error(c *fiber.Ctx, status int, message string) error {
	return Message(c, status, message)
}

func JSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}
