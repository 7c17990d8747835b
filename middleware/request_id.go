package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request so API logs can be correlated with the UI's
// error reports.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

// GetRequestID returns the id set by RequestID.
func GetRequestID(c *fiber.Ctx) string {
	value, ok := c.Locals("requestID").(string)
	if ok {
		return value
	}
	return "0"
}
