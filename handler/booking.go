package handler

import (
	"errors"
	"time"

	"room_manager/apperrors"
	"room_manager/constants"
	"room_manager/model"
	"room_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr != "" {
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FILTER, err)
		}
	}

	bookings, err := h.Bookings.List(dateStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	user, err := h.Users.Resolve(input.UserEmail, &input.UserName)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	booking, err := h.Bookings.Create(user.ID, input.RoomId, input.Start, input.End)
	if err != nil {
		if errors.Is(err, apperrors.ErrOverlap) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_OVERLAP, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *Handler) EditBooking(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("inputEditBooking").(model.UpdateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := h.Bookings.GetByID(bookingId)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	// Omitted fields inherit the stored record before the overlap re-check.
	userId := existing.UserId
	roomId := existing.RoomId
	start := existing.StartTime
	end := existing.EndTime
	if input.RoomId != nil {
		roomId = *input.RoomId
	}
	if input.Start != nil {
		start = *input.Start
	}
	if input.End != nil {
		end = *input.End
	}
	if input.UserEmail != nil {
		user, err := h.Users.Resolve(*input.UserEmail, input.UserName)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
		userId = user.ID
	}

	booking, err := h.Bookings.Update(bookingId, userId, roomId, start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		case errors.Is(err, apperrors.ErrOverlap):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_OVERLAP, nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	booking, err := h.Bookings.Delete(bookingId)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}
