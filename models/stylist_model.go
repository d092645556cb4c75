package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Stylist struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties"`
	Rating      float64        `gorm:"type:numeric(2,1);default:5" json:"rating"`
	Experience  string         `gorm:"type:text" json:"experience"`
	Phone       string         `gorm:"size:30" json:"phone,omitempty"`
	PhotoURL    string         `gorm:"size:512" json:"photoUrl,omitempty"`
	Available   bool           `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
