package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/stats"
	"github.com/beautyexpress/salon_backend/utils"
	ws "github.com/beautyexpress/salon_backend/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SendMessageRequest struct {
	CustomerID    string `json:"customerId" validate:"required"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	SenderID      string `json:"senderId" validate:"required"`
	SenderName    string `json:"senderName"`
	SenderType    string `json:"senderType" validate:"required,oneof=admin customer"`
	Text          string `json:"text" validate:"required"`
}

// ListConversations returns every thread, most recently active first.
func ListConversations(c *fiber.Ctx) error {
	var conversations []models.Conversation
	if err := database.DB.Order("last_message_time desc").Find(&conversations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch conversations"})
	}
	return c.JSON(conversations)
}

// isAdminRequest reports whether the request carries a valid admin bearer
// token. Used on routes that stay public but behave differently for admins.
func isAdminRequest(c *fiber.Ctx) bool {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return false
	}
	claims, err := parseToken(strings.TrimPrefix(auth, prefix))
	if err != nil {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// GetConversationMessages returns a thread's messages oldest-first. When the
// caller is an admin the thread's unread counter is cleared, since fetching
// means the messaging center opened it; customers polling their own thread
// leave the counter alone.
func GetConversationMessages(c *fiber.Ctx) error {
	conversationID := c.Params("conversationId")

	var messages []models.Message
	if err := database.DB.Where("conversation_id = ?", conversationID).
		Order("created_at asc").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	if isAdminRequest(c) {
		if err := database.DB.Model(&models.Conversation{}).Where("id = ?", conversationID).
			Update("unread_count", 0).Error; err != nil {
			log.Printf("⚠️ Failed to reset unread count for %s: %v", conversationID, err)
		} else {
			stats.Default.NotifyConversationsChanged()
		}
	}

	return c.JSON(messages)
}

// refreshConversation returns the thread summary row to store after a new
// message: the existing row updated, or a fresh one when the thread does
// not exist yet. Customer messages bump the unread counter; admin replies
// leave it alone.
func refreshConversation(existing *models.Conversation, conversationID, customerID, customerName, customerEmail, text string, fromCustomer bool, now time.Time) models.Conversation {
	conversation := models.Conversation{
		ID:            conversationID,
		CustomerID:    customerID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
	}
	if existing != nil {
		conversation = *existing
	}

	conversation.LastMessage = text
	conversation.LastMessageTime = now
	if fromCustomer {
		conversation.UnreadCount++
	}
	return conversation
}

// touchConversation upserts the thread summary for a new message. Both the
// REST endpoint and the chat socket persist through this path so a message
// on a brand-new thread always creates its conversation row.
func touchConversation(conversationID, customerID, customerName, customerEmail, text string, fromCustomer bool) error {
	var existing *models.Conversation

	var row models.Conversation
	err := database.DB.First(&row, "id = ?", conversationID).Error
	switch {
	case err == nil:
		existing = &row
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return err
	}

	conversation := refreshConversation(existing, conversationID, customerID, customerName, customerEmail, text, fromCustomer, time.Now())
	return database.DB.Save(&conversation).Error
}

// SendMessage stores a chat message, refreshes the thread summary and
// broadcasts the message over the websocket hub.
func SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	conversationID := utils.ConversationID(req.CustomerID)

	if err := touchConversation(conversationID, req.CustomerID, req.CustomerName, req.CustomerEmail, req.Text, req.SenderType == "customer"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save conversation"})
	}

	message := models.Message{
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		SenderName:     req.SenderName,
		SenderType:     req.SenderType,
		Text:           req.Text,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save message"})
	}

	ws.Broadcast <- &message
	stats.Default.NotifyConversationsChanged()

	return c.Status(fiber.StatusCreated).JSON(message)
}

// SocketUpgrade gates the websocket handshakes (chat and stats). The token
// comes as a query param because browsers cannot set headers on websocket
// connects.
func SocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := parseToken(c.Query("token"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	c.Locals("user_id", userID)
	c.Locals("is_admin", role == "admin")
	return c.Next()
}

// ChatSocket runs one connected chat socket until it closes. Frames go
// through the same conversation upsert as the REST endpoint, so a frame on
// a thread with no row yet creates it before the message is stored and
// broadcast.
func ChatSocket(conn *websocket.Conn) {
	client := &ws.Client{
		UserID:  conn.Locals("user_id").(string),
		IsAdmin: conn.Locals("is_admin").(bool),
		Conn:    conn,
	}

	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	for {
		var payload ws.MessagePayload
		if err := conn.ReadJSON(&payload); err != nil {
			break
		}
		if payload.Text == "" || payload.ConversationID == "" {
			continue
		}

		customerUID := utils.CustomerUID(payload.ConversationID)

		senderType := "customer"
		senderName := ""
		if client.IsAdmin {
			senderType = "admin"
			senderName = "Admin"
		}

		customerName, customerEmail := "", ""
		var profile models.Client
		if err := database.DB.First(&profile, "uid = ?", customerUID).Error; err == nil {
			customerName = profile.DisplayName
			customerEmail = profile.Email
			if senderType == "customer" {
				senderName = profile.DisplayName
			}
		}

		if err := touchConversation(payload.ConversationID, customerUID, customerName, customerEmail, payload.Text, senderType == "customer"); err != nil {
			log.Printf("🔥 Failed to save conversation for socket message: %v", err)
			continue
		}

		message := models.Message{
			ConversationID: payload.ConversationID,
			SenderID:       client.UserID,
			SenderName:     senderName,
			SenderType:     senderType,
			Text:           payload.Text,
		}
		if err := database.DB.Create(&message).Error; err != nil {
			log.Printf("🔥 Failed to persist socket message: %v", err)
			continue
		}

		ws.Broadcast <- &message
		stats.Default.NotifyConversationsChanged()
	}
}
