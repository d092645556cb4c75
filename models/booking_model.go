package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Booking is a scheduled or completed salon appointment. Records written by
// the online booking form carry Price/Revenue and a customer identity; in-shop
// bookings created by admins carry Amount and no email/phone.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail string    `gorm:"size:255" json:"customerEmail"`
	CustomerPhone string    `gorm:"size:30" json:"customerPhone"`
	CustomerID    string    `gorm:"size:128;index" json:"customerId"`

	Service   string         `gorm:"size:255" json:"service"`
	ServiceID string         `gorm:"size:64" json:"serviceId"`
	Services  pq.StringArray `gorm:"type:text[]" json:"services,omitempty"`

	Stylist   string `gorm:"size:255" json:"stylist"`
	StylistID string `gorm:"size:64;index" json:"stylistId"`

	Date   string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"size:10;not null" json:"time"`
	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Type   string `gorm:"size:10" json:"type"` // admin = in-shop, client = online
	Notes  string `gorm:"type:text" json:"notes"`

	// Three legacy monetary fields coexist because different booking paths
	// wrote different names over time. Read through RevenueValue, never
	// directly, so historical figures stay stable.
	Amount  float64 `gorm:"type:numeric(10,2);default:0" json:"amount"`
	Revenue float64 `gorm:"type:numeric(10,2);default:0" json:"revenue"`
	Price   float64 `gorm:"type:numeric(10,2);default:0" json:"price"`

	PaymentMethod string `gorm:"size:20" json:"paymentMethod"`
	Duration      int    `gorm:"default:0" json:"duration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// RevenueValue returns the booking's monetary value using the legacy
// first-non-zero fallback chain: amount, then revenue, then price.
func (b *Booking) RevenueValue() float64 {
	if b.Amount != 0 {
		return b.Amount
	}
	if b.Revenue != 0 {
		return b.Revenue
	}
	return b.Price
}

// Booking lifecycle statuses. Transitions are admin-driven and one-way in
// practice (pending -> confirmed -> completed, or cancelled); nothing below
// the UI enforces them.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)
