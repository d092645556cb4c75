package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func StylistRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/stylists", handlers.ListStylists)
	api.Get("/stylists/:stylistId", handlers.GetStylist)

	adminStylist := api.Group("/admin/stylists", middleware.Protected(), middleware.AdminRequired())
	adminStylist.Post("", handlers.CreateStylist)
	adminStylist.Put("/:stylistId", handlers.UpdateStylist)
	adminStylist.Delete("/:stylistId", handlers.DeleteStylist)
}
