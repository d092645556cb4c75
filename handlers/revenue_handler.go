package handlers

import (
	"time"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/services"
	"github.com/gofiber/fiber/v2"
)

// GetRevenueReport computes the metrics dashboard payload from the full
// booking history: daily and weekly revenue series, per-service breakdown
// and the headline totals.
func GetRevenueReport(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	report := services.ComputeRevenueReport(bookings, time.Now())
	return c.JSON(report)
}
