package middleware

import (
	"errors"
	"strings"

	"room_manager/helper"
	"room_manager/model"
	"room_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected rejects requests without a valid access token. The token is read
// from the access_token cookie, falling back to an Authorization bearer
// header. Verified identity lands in c.Locals("claims").
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		claim, err := helper.ClaimFromToken(jwtToken)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("claims", claim)
		return c.Next()
	}
}

// GetClaims returns the identity stored by Protected.
func GetClaims(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals("claims").(model.TokenClaim)
	return claim, ok
}
