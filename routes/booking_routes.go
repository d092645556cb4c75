package routes

import (
	"github.com/beautyexpress/salon_backend/handlers"
	"github.com/beautyexpress/salon_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Public surface used by the customer booking form.
	api.Get("/services", handlers.ListServices)
	api.Post("/bookings", handlers.CreateBooking)
	api.Get("/bookings/customer/:customerId", handlers.GetClientBookings)
	api.Post("/clients", handlers.RegisterClient)

	adminBooking := api.Group("/admin/bookings", middleware.Protected(), middleware.AdminRequired())
	adminBooking.Get("", handlers.ListBookings)
	adminBooking.Post("", handlers.CreateAdminBooking)
	adminBooking.Patch("/:bookingId/status", handlers.UpdateBookingStatus)
}
