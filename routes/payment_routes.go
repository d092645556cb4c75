package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

// PaymentRoutes lives under /api/mpesa rather than /api/v1 because the
// paths are shared with the Daraja callback configuration and the legacy
// frontend client.
func PaymentRoutes(app *fiber.App) {
	mpesa := app.Group("/api/mpesa")
	mpesa.Post("/stkpush", handlers.InitiateStkPush)
	mpesa.Post("/callback", handlers.MpesaCallback)
}
