package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/sample-data", handlers.GetSampleDataStatus)
	admin.Delete("/sample-data", handlers.DeleteBotData)
	admin.Post("/sample-data/enable", handlers.EnableSampleData)
}
