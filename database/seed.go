package database

import (
	"log"
	"time"

	config "github.com/beautyexpress/salon_backend/configs"
	"github.com/beautyexpress/salon_backend/models"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// BotClientUIDs identifies the demo clients created by SeedSampleData so
// the admin utilities can remove them again.
var BotClientUIDs = []string{"client1", "client2", "client3"}

// SeedSampleData loads a small demo dataset on first boot. Controlled by
// two settings flags: sample_data_disabled suppresses seeding entirely,
// sample_data_initialized marks it done. Failures log and continue; demo
// data is never worth refusing to start over.
func SeedSampleData() {
	if GetFlag(models.SettingSampleDataDisabled) != "" {
		log.Println("Sample data initialization is disabled")
		return
	}
	if GetFlag(models.SettingSampleDataInitialized) != "" {
		log.Println("Sample data already initialized")
		return
	}

	log.Println("Initializing sample data...")

	today := time.Now().Format("2006-01-02")

	sampleClients := []models.Client{
		{UID: "client1", Email: "sarah@example.com", DisplayName: "Sarah Johnson", Phone: "+1234567890", IsClient: true},
		{UID: "client2", Email: "maria@example.com", DisplayName: "Maria Garcia", Phone: "+1234567891", IsClient: true},
		{UID: "client3", Email: "lisa@example.com", DisplayName: "Lisa Chen", Phone: "+1234567892", IsClient: true},
	}

	sampleBookings := []models.Booking{
		{
			CustomerID: "client1", CustomerName: "Sarah Johnson", CustomerEmail: "sarah@example.com", CustomerPhone: "+1234567890",
			Service: "Gel + Artwork", Stylist: "Sarah", Date: today, Time: "10:00 AM",
			Status: models.BookingStatusCompleted, Notes: "Regular customer", Revenue: 500, Type: "client",
		},
		{
			CustomerID: "client2", CustomerName: "Maria Garcia", CustomerEmail: "maria@example.com", CustomerPhone: "+1234567891",
			Service: "Pedicure + Gel", Stylist: "Emma", Date: today, Time: "2:00 PM",
			Status: models.BookingStatusCompleted, Notes: "First time client", Revenue: 800, Type: "client",
		},
		{
			CustomerID: "client3", CustomerName: "Lisa Chen", CustomerEmail: "lisa@example.com", CustomerPhone: "+1234567892",
			Service: "Acrylics", Stylist: "Lisa", Date: today, Time: "4:00 PM",
			Status: models.BookingStatusCompleted, Notes: "Special design requested", Revenue: 1500, Type: "client",
		},
	}

	now := time.Now()
	sampleConversations := []models.Conversation{
		{
			ID: "client1_admin", CustomerName: "Sarah Johnson", CustomerEmail: "sarah@example.com", CustomerID: "client1",
			LastMessage: "Thank you for confirming my appointment!", LastMessageTime: now, UnreadCount: 1,
		},
		{
			ID: "client2_admin", CustomerName: "Maria Garcia", CustomerEmail: "maria@example.com", CustomerID: "client2",
			LastMessage: "What time slots do you have available?", LastMessageTime: now, UnreadCount: 2,
		},
	}

	sampleMessages := []models.Message{
		{ConversationID: "client1_admin", SenderID: "client1", SenderName: "Sarah Johnson", SenderType: "customer", Text: "Hi! I'd like to book an appointment"},
		{ConversationID: "client1_admin", SenderID: "admin", SenderName: "Admin", SenderType: "admin", Text: "Of course! What service are you interested in?"},
		{ConversationID: "client1_admin", SenderID: "client1", SenderName: "Sarah Johnson", SenderType: "customer", Text: "Thank you for confirming my appointment!"},
	}

	for _, client := range sampleClients {
		if err := DB.Save(&client).Error; err != nil {
			log.Printf("❌ Error adding sample client %s: %v", client.UID, err)
			return
		}
	}
	for _, booking := range sampleBookings {
		if err := DB.Create(&booking).Error; err != nil {
			log.Printf("❌ Error adding sample booking: %v", err)
			return
		}
	}
	for _, conversation := range sampleConversations {
		if err := DB.Save(&conversation).Error; err != nil {
			log.Printf("❌ Error adding sample conversation: %v", err)
			return
		}
	}
	for _, message := range sampleMessages {
		if err := DB.Create(&message).Error; err != nil {
			log.Printf("❌ Error adding sample message: %v", err)
			return
		}
	}

	var admin models.User
	if err := DB.First(&admin, "role = ?", "admin").Error; err == nil {
		notification := models.Notification{
			UserID:  admin.ID.String(),
			Title:   "Welcome Admin!",
			Message: "Sample data has been initialized successfully",
			Type:    "message",
		}
		if err := DB.Create(&notification).Error; err != nil {
			log.Printf("❌ Error adding sample notification: %v", err)
		}
	}

	if err := SetFlag(models.SettingSampleDataInitialized, "true"); err != nil {
		log.Printf("❌ Error recording sample data flag: %v", err)
		return
	}

	log.Println("✅ Sample data initialized successfully")
}
