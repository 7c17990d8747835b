package validate

import (
	"errors"
	"fmt"
	"strconv"

	"room_manager/apperrors"
	"room_manager/constants"
	"room_manager/model"
	"room_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BOOKING_INPUT, fmt.Errorf("invalid input: %w", err))
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.INVALID_BOOKING_INPUT, fieldDetails(err))
		}

		c.Locals("inputCreateBooking", input)

		return c.Next()
	}
}

func EditBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BOOKING_INPUT, fmt.Errorf("invalid input: %w", err))
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.INVALID_BOOKING_INPUT, fieldDetails(err))
		}

		// Ordering is only enforced when both ends of the interval are
		// supplied; omitted fields inherit the stored record's values.
		if input.Start != nil && input.End != nil && !input.End.After(*input.Start) {
			return utils.ValidationErrorResponse(c, constants.INVALID_BOOKING_INPUT, []apperrors.FieldError{{Field: "end", Rule: "gtfield"}})
		}

		c.Locals("inputId", uint(valueKey))
		c.Locals("inputEditBooking", input)

		return c.Next()
	}
}
