package router

import (
	"room_manager/handler"
	"room_manager/middleware"
	"room_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/refresh-token", h.RefreshToken)
	auth.Get("/me", middleware.Protected(), h.Me)

	api.Get("/rooms", middleware.Protected(), h.GetRooms)

	bookings := api.Group("/bookings")
	bookings.Get("/", middleware.Protected(), h.GetBookings)
	bookings.Post("/", middleware.Protected(), validate.CreateBooking(), h.CreateBooking)
	bookings.Patch("/:bookingId", middleware.Protected(), validate.EditBooking("bookingId"), h.EditBooking)
	bookings.Delete("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), h.DeleteBooking)
}
