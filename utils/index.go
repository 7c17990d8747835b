package utils

import (
	"room_manager/apperrors"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// ValidationErrorResponse is a 400 with the per-field rules that failed.
func ValidationErrorResponse(c *fiber.Ctx, message string, details []apperrors.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"details": details,
	})
}

func Ptr[T any](v T) *T {
	return &v
}
