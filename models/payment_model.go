package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Payment records one STK push attempt so the asynchronous Daraja callback
// can be correlated back to the request that triggered it.
type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`

	PhoneNumber string  `gorm:"size:30;not null" json:"phoneNumber"`
	Amount      float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	AccountRef  string  `gorm:"size:64;not null" json:"accountRef"`

	MerchantRequestID string `gorm:"size:255;index" json:"merchantRequestId"`
	CheckoutRequestID string `gorm:"size:255;index" json:"checkoutRequestId"`
	Status            string `gorm:"size:20;not null;default:'pending'" json:"status"` // pending | succeeded | failed
	ProviderTxnID     string `gorm:"size:255" json:"providerTxnId,omitempty"`
	ResultDesc        string `gorm:"size:512" json:"resultDesc,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
