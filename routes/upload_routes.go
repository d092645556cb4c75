package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	upload := api.Group("/uploads", middleware.Protected(), middleware.AdminRequired())
	upload.Get("/signature", handlers.GenerateUploadSignature)
}
