package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID string    `gorm:"size:160;not null;index" json:"conversationId"`
	SenderID       string    `gorm:"size:128;not null" json:"senderId"`
	SenderName     string    `gorm:"size:255" json:"senderName"`
	SenderType     string    `gorm:"size:10;not null" json:"senderType"` // admin | customer
	Text           string    `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"timestamp"`
}
