package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/ratelimit"
)

// PortalRateLimit throttles portal calls per token.
func PortalRateLimit(l ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("token")
		if key == "" {
			key = c.IP()
		}
		if !l.Allow(key) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		}
		return c.Next()
	}
}
