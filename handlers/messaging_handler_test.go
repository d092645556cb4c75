package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beautyexpress/salon_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func TestRefreshConversationCreatesMissingThread(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	conversation := refreshConversation(nil, "client9_admin", "client9", "Amina Odhiambo", "amina@example.com", "Hello, are you open today?", true, now)

	if conversation.ID != "client9_admin" || conversation.CustomerID != "client9" {
		t.Errorf("new thread identity = %q/%q, want client9_admin/client9", conversation.ID, conversation.CustomerID)
	}
	if conversation.CustomerName != "Amina Odhiambo" || conversation.CustomerEmail != "amina@example.com" {
		t.Errorf("new thread profile = %q/%q, want the sender's details", conversation.CustomerName, conversation.CustomerEmail)
	}
	if conversation.LastMessage != "Hello, are you open today?" || !conversation.LastMessageTime.Equal(now) {
		t.Errorf("thread summary = %q at %v, want the new message", conversation.LastMessage, conversation.LastMessageTime)
	}
	if conversation.UnreadCount != 1 {
		t.Errorf("UnreadCount = %d, want 1 for a customer message", conversation.UnreadCount)
	}
}

func TestRefreshConversationUpdatesExistingThread(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	existing := &models.Conversation{
		ID:           "client9_admin",
		CustomerID:   "client9",
		CustomerName: "Amina Odhiambo",
		LastMessage:  "Hello, are you open today?",
		UnreadCount:  2,
	}

	// Admin reply: summary refreshes, unread counter stays.
	conversation := refreshConversation(existing, "client9_admin", "client9", "", "", "Yes, until 5:30 PM!", false, now)

	if conversation.CustomerName != "Amina Odhiambo" {
		t.Errorf("CustomerName = %q, existing profile must be kept", conversation.CustomerName)
	}
	if conversation.LastMessage != "Yes, until 5:30 PM!" {
		t.Errorf("LastMessage = %q, want the reply", conversation.LastMessage)
	}
	if conversation.UnreadCount != 2 {
		t.Errorf("UnreadCount = %d, admin replies must not bump it", conversation.UnreadCount)
	}

	// Follow-up from the customer bumps it.
	conversation = refreshConversation(&conversation, "client9_admin", "client9", "", "", "Great, see you soon", true, now)
	if conversation.UnreadCount != 3 {
		t.Errorf("UnreadCount = %d, want 3 after another customer message", conversation.UnreadCount)
	}
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestIsAdminRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/role-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"admin": isAdminRequest(c)})
	})

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"no token", "", `{"admin":false}`},
		{"customer token", "Bearer " + signTestToken(t, "customer"), `{"admin":false}`},
		{"admin token", "Bearer " + signTestToken(t, "admin"), `{"admin":true}`},
		{"garbage token", "Bearer garbage", `{"admin":false}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/role-check", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read response: %v", err)
			}
			if got := string(body); got != tc.want {
				t.Errorf("response = %s, want %s", got, tc.want)
			}
		})
	}
}
