package handlers

import (
	"log"
	"strings"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/gofiber/fiber/v2"
)

// createNotification writes an in-app notification. Notifications are
// best-effort, a failed insert is logged and never fails the caller.
func createNotification(userID, title, message, notifType string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Read:    false,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("⚠️ Failed to create notification for %s: %v", userID, err)
	}
}

// notifyAdmins fans a notification out to every admin account.
func notifyAdmins(title, message, notifType string) {
	var admins []models.User
	if err := database.DB.Where("role = ?", "admin").Find(&admins).Error; err != nil {
		log.Printf("⚠️ Failed to fetch admins for notification: %v", err)
		return
	}
	for _, admin := range admins {
		createNotification(admin.ID.String(), title, message, notifType)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GetNotifications lists a user's notifications newest-first.
func GetNotifications(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var notifs []models.Notification
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}

	return c.JSON(notifs)
}

// MarkNotificationRead marks a single notification as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	notifID := c.Params("notificationId")

	result := database.DB.Model(&models.Notification{}).Where("id = ?", notifID).Update("read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead marks every unread notification for a user.
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID := c.Params("userId")

	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}

	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
