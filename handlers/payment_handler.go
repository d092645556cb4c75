package handlers

import (
	"log"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/payments"
	"github.com/beautyexpress/salon_backend/stats"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StkPushRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
	AccountRef  string  `json:"accountRef"`
	BookingID   string  `json:"bookingId"`
}

// InitiateStkPush fires an M-Pesa STK push at the customer's phone. The
// three required fields are checked before any provider call so a malformed
// request never burns an API token. Success means Safaricom accepted the
// request; the actual payment outcome arrives later on the callback, where
// an attached bookingId lets the callback mark that booking as paid.
func InitiateStkPush(c *fiber.Ctx) error {
	var req StkPushRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.PhoneNumber == "" || req.Amount <= 0 || req.AccountRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "phoneNumber, amount and accountRef are required"})
	}

	var bookingID *uuid.UUID
	if req.BookingID != "" {
		id, err := uuid.Parse(req.BookingID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bookingId must be a valid booking id"})
		}
		bookingID = &id
	}

	resp, err := payments.InitiateSTKPush(req.PhoneNumber, req.Amount, req.AccountRef)
	if err != nil {
		log.Printf("🔥 STK push failed for %s: %v", req.AccountRef, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	payment := models.Payment{
		BookingID:         bookingID,
		PhoneNumber:       payments.NormalizePhone(req.PhoneNumber),
		Amount:            req.Amount,
		AccountRef:        req.AccountRef,
		MerchantRequestID: resp.MerchantRequestID,
		CheckoutRequestID: resp.CheckoutRequestID,
		Status:            models.PaymentStatusPending,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		log.Printf("⚠️ Failed to record payment attempt %s: %v", req.AccountRef, err)
	}

	return c.JSON(resp)
}

type stkCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []struct {
			Name  string      `json:"Name"`
			Value interface{} `json:"Value"`
		} `json:"Item"`
	} `json:"CallbackMetadata"`
}

type stkCallbackEnvelope struct {
	Body struct {
		StkCallback stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// resolveCallback applies a Daraja result to its payment row and reports
// whether a linked booking should be marked as paid by M-Pesa.
func resolveCallback(payment *models.Payment, cb stkCallback) bool {
	if cb.ResultCode == 0 {
		payment.Status = models.PaymentStatusSucceeded
		for _, item := range cb.CallbackMetadata.Item {
			if item.Name == "MpesaReceiptNumber" {
				if receipt, ok := item.Value.(string); ok {
					payment.ProviderTxnID = receipt
				}
			}
		}
	} else {
		payment.Status = models.PaymentStatusFailed
	}
	payment.ResultDesc = cb.ResultDesc

	return payment.BookingID != nil && payment.Status == models.PaymentStatusSucceeded
}

// MpesaCallback resolves a pending payment from the Daraja result webhook.
// Safaricom expects a ResultCode 0 acknowledgement regardless of whether
// we recognized the payment, otherwise it retries the callback.
func MpesaCallback(c *fiber.Ctx) error {
	var envelope stkCallbackEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse callback"})
	}

	cb := envelope.Body.StkCallback

	var payment models.Payment
	if err := database.DB.First(&payment, "checkout_request_id = ?", cb.CheckoutRequestID).Error; err != nil {
		log.Printf("⚠️ Callback for unknown CheckoutRequestID %s", cb.CheckoutRequestID)
		return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
	}

	markBookingPaid := resolveCallback(&payment, cb)

	if err := database.DB.Save(&payment).Error; err != nil {
		log.Printf("🔥 Failed to update payment %s: %v", payment.ID, err)
	}

	if markBookingPaid {
		if err := database.DB.Model(&models.Booking{}).Where("id = ?", payment.BookingID).
			Update("payment_method", "mpesa").Error; err != nil {
			log.Printf("⚠️ Failed to flag booking %s as mpesa paid: %v", payment.BookingID, err)
		}
		stats.Default.NotifyBookingsChanged()
	}

	return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
}
