package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
	"github.com/mkamau589/venue_booking/middleware"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/venues/:venueId/reviews", handlers.GetVenueReviews)
	api.Post("/venues/:venueId/reviews", middleware.Protected(), handlers.CreateReview)
}
