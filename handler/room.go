package handler

import (
	"room_manager/constants"
	"room_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetRooms(c *fiber.Ctx) error {
	rooms, err := h.Rooms.List()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(rooms)
}
