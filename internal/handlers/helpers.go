package handlers

import (
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	msgInvalidBody = "Invalid request body"
	msgServerError = "Server error"
)

// decodeBody decodes a JSON body into dst. An empty body leaves dst zeroed so
// the service reports the missing fields.
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, dst)
}

func invalidBody(c *fiber.Ctx, action string, err error) error {
	logger.Warn(action+"_invalid_body", map[string]interface{}{
		"error":      err.Error(),
		"request_id": logger.RequestID(c),
	})
	return utils.Error(c, fiber.StatusBadRequest, msgInvalidBody)
}

// respondError writes the response for a service failure. Internal failures
// are logged and reported without their cause.
func respondError(c *fiber.Ctx, action string, err error) error {
	kind := services.KindOf(err)
	if kind == services.KindInternal {
		logger.Error(action+"_failed", err, map[string]interface{}{
			"path":       c.Path(),
			"request_id": logger.RequestID(c),
		})
		return utils.Error(c, fiber.StatusInternalServerError, msgServerError)
	}
	return utils.Error(c, kind.Status(), err.Error())
}
