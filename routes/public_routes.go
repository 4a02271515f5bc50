package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/support/faqs", handlers.GetFAQs)
}
