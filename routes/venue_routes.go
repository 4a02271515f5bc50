package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
	"github.com/mkamau589/venue_booking/middleware"
)

func VenueRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/venues", handlers.ListVenues)
	api.Get("/venues/:venueId", handlers.GetVenue)
	api.Get("/venues/:venueId/availability", handlers.GetVenueAvailability)

	api.Post("/venues", middleware.Protected(), middleware.OwnerRequired(), handlers.CreateVenue)

	owner := api.Group("/owner", middleware.Protected(), middleware.OwnerRequired())
	owner.Get("/venues", handlers.GetMyVenues)
}
