package validate

import (
	"errors"
	"strconv"
	"unicode"

	"room_manager/apperrors"
	"room_manager/constants"
	"room_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById guards per-id routes: the path param must parse as a positive
// integer, anything else is a 400 before the handler runs.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}

func fieldDetails(err error) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.FieldError{{Field: "body", Rule: "invalid"}}
	}
	details := make([]apperrors.FieldError, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, apperrors.FieldError{Field: jsonField(e.Field()), Rule: e.Tag()})
	}
	return details
}

// jsonField maps a Go struct field name to its json counterpart
// (UserEmail -> userEmail).
func jsonField(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
