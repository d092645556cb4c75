package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notifications := api.Group("/notifications")
	notifications.Get("/:userId", handlers.GetNotifications)
	notifications.Patch("/:notificationId/read", handlers.MarkNotificationRead)
	notifications.Patch("/user/:userId/read-all", handlers.MarkAllNotificationsRead)
}
