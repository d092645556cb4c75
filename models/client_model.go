package models

import "time"

// Client is a customer profile. UIDs come from the platform auth provider,
// so they are caller-supplied strings rather than generated UUIDs.
type Client struct {
	UID         string `gorm:"primary_key;size:128" json:"uid"`
	Email       string `gorm:"size:255" json:"email"`
	DisplayName string `gorm:"size:255" json:"displayName"`
	Phone       string `gorm:"size:30" json:"phone"`
	IsClient    bool   `gorm:"default:true" json:"isClient"`

	CreatedAt time.Time `json:"createdAt"`
}
