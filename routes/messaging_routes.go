package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	messaging := api.Group("/messaging")
	messaging.Post("/messages", handlers.SendMessage)
	messaging.Get("/conversations", middleware.Protected(), middleware.AdminRequired(), handlers.ListConversations)
	messaging.Get("/conversations/:conversationId/messages", handlers.GetConversationMessages)

	app.Use("/ws/chat", handlers.SocketUpgrade)
	app.Get("/ws/chat", websocket.New(handlers.ChatSocket))
}
