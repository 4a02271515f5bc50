package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
	"github.com/mkamau589/venue_booking/middleware"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	messages := api.Group("/messages", middleware.Protected())
	messages.Get("", handlers.GetMyMessages)
	messages.Post("", handlers.SendMessage)
}
