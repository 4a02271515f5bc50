package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
	"github.com/mkamau589/venue_booking/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Get("", handlers.GetAllBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/pay", handlers.PayBooking)
	booking.Get("/:bookingId/receipt", handlers.GetBookingReceipt)
}
