package handlers

import (
	"log"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/stats"
	"github.com/gofiber/fiber/v2"
)

// GetSampleDataStatus reports the demo-data flags so the dashboard can
// show whether seeding ran and whether it is suppressed.
func GetSampleDataStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"initialized": database.GetFlag(models.SettingSampleDataInitialized) != "",
		"disabled":    database.GetFlag(models.SettingSampleDataDisabled) != "",
	})
}

// DeleteBotData removes the seeded demo clients and everything hanging off
// them, then disables reseeding so the demo rows stay gone after restarts.
func DeleteBotData(c *fiber.Ctx) error {
	uids := database.BotClientUIDs

	conversationIDs := make([]string, 0, len(uids))
	for _, uid := range uids {
		conversationIDs = append(conversationIDs, uid+"_admin")
	}

	deleted := map[string]int64{}

	result := database.DB.Where("conversation_id IN ?", conversationIDs).Delete(&models.Message{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete demo messages"})
	}
	deleted["messages"] = result.RowsAffected

	result = database.DB.Where("id IN ?", conversationIDs).Delete(&models.Conversation{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete demo conversations"})
	}
	deleted["conversations"] = result.RowsAffected

	result = database.DB.Where("customer_id IN ?", uids).Delete(&models.Booking{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete demo bookings"})
	}
	deleted["bookings"] = result.RowsAffected

	result = database.DB.Where("uid IN ?", uids).Delete(&models.Client{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete demo clients"})
	}
	deleted["clients"] = result.RowsAffected

	if err := database.SetFlag(models.SettingSampleDataDisabled, "true"); err != nil {
		log.Printf("⚠️ Failed to disable sample data reseeding: %v", err)
	}
	if err := database.ClearFlag(models.SettingSampleDataInitialized); err != nil {
		log.Printf("⚠️ Failed to clear sample data flag: %v", err)
	}

	stats.Default.NotifyBookingsChanged()
	stats.Default.NotifyConversationsChanged()
	stats.Default.NotifyClientsChanged()

	return c.JSON(fiber.Map{
		"message": "Demo data removed",
		"deleted": deleted,
	})
}

// EnableSampleData clears the suppression flag so the demo dataset is
// reseeded on the next boot.
func EnableSampleData(c *fiber.Ctx) error {
	if err := database.ClearFlag(models.SettingSampleDataDisabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update setting"})
	}
	if err := database.ClearFlag(models.SettingSampleDataInitialized); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update setting"})
	}
	return c.JSON(fiber.Map{"message": "Sample data will be reseeded on next startup"})
}
