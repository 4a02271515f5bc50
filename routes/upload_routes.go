package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkamau589/venue_booking/handlers"
	"github.com/mkamau589/venue_booking/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/uploads/signature", middleware.Protected(), handlers.GenerateUploadSignature)
}
