package middleware

import (
	"time"

	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const unmatchedRoute = "unmatched"

// Metrics observes every request on m, labelled by the matched route pattern.
// Label values outlive the request, so the method is copied out of the
// request buffer fasthttp reuses.
func Metrics(m *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		statusCode := responseStatus(c, err)
		route := c.Route().Path
		if statusCode == fiber.StatusNotFound && err != nil {
			route = unmatchedRoute
		}
		m.ObserveHTTPRequest(route, utils.CopyString(c.Method()), statusCode, time.Since(start))

		return err
	}
}
