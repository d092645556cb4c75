package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func StatsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/stats", handlers.GetDashboardStats)
	admin.Get("/revenue-metrics", handlers.GetRevenueReport)

	app.Use("/ws/stats", handlers.SocketUpgrade)
	app.Get("/ws/stats", websocket.New(handlers.StatsSocket))
}
