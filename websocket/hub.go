package websocket

import (
	"log"
	"sync"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/gofiber/contrib/websocket"
)

// Client is one connected socket. Admin sockets receive every customer
// message; customer sockets only receive messages on their own thread.
type Client struct {
	UserID  string
	IsAdmin bool
	Conn    *websocket.Conn
}

type MessagePayload struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
}

var (
	clients   = make(map[*Client]struct{})
	clientsMu sync.RWMutex

	Register   = make(chan *Client)
	Unregister = make(chan *Client)
	Broadcast  = make(chan *models.Message)
)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Chat client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client] = struct{}{}
			clientsMu.Unlock()

		case client := <-Unregister:
			log.Printf("Chat client unregistered: %s", client.UserID)
			clientsMu.Lock()
			delete(clients, client)
			clientsMu.Unlock()

		case message := <-Broadcast:
			deliver(message)
		}
	}
}

// deliver fans a stored message out to its audience: the thread's customer
// plus every connected admin, skipping the sender's own socket.
func deliver(message *models.Message) {
	var conversation models.Conversation
	if err := database.DB.First(&conversation, "id = ?", message.ConversationID).Error; err != nil {
		log.Printf("Error fetching conversation %s for broadcast: %v", message.ConversationID, err)
		return
	}

	var failed []*Client

	clientsMu.RLock()
	for client := range clients {
		if client.UserID == message.SenderID {
			continue
		}
		if !client.IsAdmin && client.UserID != conversation.CustomerID {
			continue
		}
		if err := client.Conn.WriteJSON(message); err != nil {
			log.Printf("Error sending message to client %s: %v", client.UserID, err)
			client.Conn.Close()
			failed = append(failed, client)
		}
	}
	clientsMu.RUnlock()

	if len(failed) > 0 {
		clientsMu.Lock()
		for _, client := range failed {
			delete(clients, client)
		}
		clientsMu.Unlock()
	}
}
