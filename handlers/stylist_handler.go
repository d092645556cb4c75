package handlers

import (
	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type StylistRequest struct {
	Name        string   `json:"name" validate:"required"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Experience  string   `json:"experience"`
	Phone       string   `json:"phone"`
	PhotoURL    string   `json:"photoUrl" validate:"omitempty,url"`
	Available   *bool    `json:"available"`
}

// ListStylists returns the roster, available stylists first.
func ListStylists(c *fiber.Ctx) error {
	var stylists []models.Stylist
	if err := database.DB.Order("available desc, name asc").Find(&stylists).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stylists"})
	}
	return c.JSON(stylists)
}

// GetStylist returns a single stylist by id.
func GetStylist(c *fiber.Ctx) error {
	var stylist models.Stylist
	if err := database.DB.First(&stylist, "id = ?", c.Params("stylistId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stylist not found"})
	}
	return c.JSON(stylist)
}

// CreateStylist adds a stylist to the roster.
func CreateStylist(c *fiber.Ctx) error {
	var req StylistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	stylist := models.Stylist{
		Name:        req.Name,
		Specialties: pq.StringArray(req.Specialties),
		Rating:      req.Rating,
		Experience:  req.Experience,
		Phone:       req.Phone,
		PhotoURL:    req.PhotoURL,
		Available:   available,
	}
	if err := database.DB.Create(&stylist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create stylist"})
	}

	return c.Status(fiber.StatusCreated).JSON(stylist)
}

// UpdateStylist replaces a stylist's editable fields.
func UpdateStylist(c *fiber.Ctx) error {
	var stylist models.Stylist
	if err := database.DB.First(&stylist, "id = ?", c.Params("stylistId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stylist not found"})
	}

	var req StylistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	stylist.Name = req.Name
	stylist.Specialties = pq.StringArray(req.Specialties)
	stylist.Rating = req.Rating
	stylist.Experience = req.Experience
	stylist.Phone = req.Phone
	stylist.PhotoURL = req.PhotoURL
	if req.Available != nil {
		stylist.Available = *req.Available
	}

	if err := database.DB.Save(&stylist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update stylist"})
	}

	return c.JSON(stylist)
}

// DeleteStylist removes a stylist. Past bookings keep their denormalized
// stylist name, so history is unaffected.
func DeleteStylist(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Stylist{}, "id = ?", c.Params("stylistId"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete stylist"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stylist not found"})
	}
	return c.JSON(fiber.Map{"message": "Stylist deleted"})
}
