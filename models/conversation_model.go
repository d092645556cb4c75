package models

import "time"

// Conversation is a per-customer message thread summary. The ID is the
// legacy "<clientUID>_admin" convention so old thread references keep
// resolving. UnreadCount is reset to zero when an admin opens the thread.
type Conversation struct {
	ID            string `gorm:"primary_key;size:160" json:"id"`
	CustomerName  string `gorm:"size:255" json:"customerName"`
	CustomerEmail string `gorm:"size:255" json:"customerEmail"`
	CustomerID    string `gorm:"size:128;index" json:"customerId"`

	LastMessage     string    `gorm:"type:text" json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `gorm:"default:0" json:"unreadCount"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
