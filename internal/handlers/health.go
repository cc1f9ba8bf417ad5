package handlers

import (
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return utils.JSON(c, fiber.StatusOK, fiber.Map{"ok": true})
}
