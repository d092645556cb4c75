package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  string    `gorm:"size:128;not null;index" json:"userId"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"type:text" json:"message"`
	Type    string    `gorm:"size:20" json:"type"` // booking | message | system
	Read    bool      `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}
