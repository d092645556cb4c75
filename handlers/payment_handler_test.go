package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beautyexpress/salon_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func stkApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/mpesa/stkpush", InitiateStkPush)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// The three required fields are validated before any provider or database
// call, so these paths are safe to exercise without either configured.
func TestInitiateStkPushRejectsMissingFields(t *testing.T) {
	app := stkApp()

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing phone", map[string]interface{}{"amount": 500, "accountRef": "BOOKING-1"}},
		{"missing amount", map[string]interface{}{"phoneNumber": "0712345678", "accountRef": "BOOKING-1"}},
		{"zero amount", map[string]interface{}{"phoneNumber": "0712345678", "amount": 0, "accountRef": "BOOKING-1"}},
		{"missing accountRef", map[string]interface{}{"phoneNumber": "0712345678", "amount": 500}},
		{"empty body", map[string]interface{}{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/mpesa/stkpush", tc.body)
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected an error message in the response body")
			}
		})
	}
}

func TestInitiateStkPushRejectsMalformedBookingID(t *testing.T) {
	app := stkApp()

	resp := postJSON(t, app, "/api/mpesa/stkpush", map[string]interface{}{
		"phoneNumber": "0712345678",
		"amount":      500,
		"accountRef":  "BOOKING-1",
		"bookingId":   "not-a-uuid",
	})
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func successCallback(receipt string) stkCallback {
	cb := stkCallback{ResultCode: 0, ResultDesc: "The service request is processed successfully."}
	cb.CallbackMetadata.Item = []struct {
		Name  string      `json:"Name"`
		Value interface{} `json:"Value"`
	}{
		{Name: "Amount", Value: 500.0},
		{Name: "MpesaReceiptNumber", Value: receipt},
	}
	return cb
}

func TestResolveCallbackMarksLinkedBookingPaid(t *testing.T) {
	bookingID := uuid.New()
	payment := models.Payment{BookingID: &bookingID, Status: models.PaymentStatusPending}

	if !resolveCallback(&payment, successCallback("QK12XYZ")) {
		t.Error("expected a successful callback with a linked booking to mark it paid")
	}
	if payment.Status != models.PaymentStatusSucceeded {
		t.Errorf("Status = %q, want succeeded", payment.Status)
	}
	if payment.ProviderTxnID != "QK12XYZ" {
		t.Errorf("ProviderTxnID = %q, want the M-Pesa receipt", payment.ProviderTxnID)
	}
}

func TestResolveCallbackWithoutBookingOrOnFailure(t *testing.T) {
	unlinked := models.Payment{Status: models.PaymentStatusPending}
	if resolveCallback(&unlinked, successCallback("QK13XYZ")) {
		t.Error("payment with no linked booking must not flag anything")
	}

	bookingID := uuid.New()
	failed := models.Payment{BookingID: &bookingID, Status: models.PaymentStatusPending}
	cb := stkCallback{ResultCode: 1032, ResultDesc: "Request cancelled by user"}
	if resolveCallback(&failed, cb) {
		t.Error("failed callback must not mark the booking paid")
	}
	if failed.Status != models.PaymentStatusFailed {
		t.Errorf("Status = %q, want failed", failed.Status)
	}
	if failed.ResultDesc != "Request cancelled by user" {
		t.Errorf("ResultDesc = %q, want the provider text", failed.ResultDesc)
	}
}
