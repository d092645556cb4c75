package payments

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"

	config "github.com/beautyexpress/salon_backend/configs"
)

// Public Safaricom sandbox defaults, used when no shortcode/passkey is
// configured so the sandbox works out of the box.
const (
	defaultShortCode = "174379"
	defaultPasskey   = "bfb279f9aa9bdbcf158e97dd71a467cd2e0c893059b10f78e6b72ada1ed2c919"
	defaultReceiver  = "0707444525"
)

type StkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type StkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

var nonNumericRegex = regexp.MustCompile(`[^0-9]`)

// NormalizePhone converts phone numbers to the 254XXXXXXXXX convention:
// a leading "0" is replaced with the country code, numbers without any
// prefix are prefixed, and already-prefixed numbers pass through.
func NormalizePhone(phone string) string {
	sanitized := nonNumericRegex.ReplaceAllString(phone, "")

	if strings.HasPrefix(sanitized, "0") {
		return "254" + sanitized[1:]
	}
	if !strings.HasPrefix(sanitized, "254") {
		return "254" + sanitized
	}
	return sanitized
}

// SimulatorMode reports whether provider credentials are absent, in which
// case STK pushes are answered locally. This is a demo/dev fallback only;
// with credentials configured it can never activate.
func SimulatorMode() bool {
	return config.Config("MPESA_CONSUMER_KEY") == "" || config.Config("MPESA_CONSUMER_SECRET") == ""
}

func simulatedResponse(accountRef string) *StkPushResponse {
	return &StkPushResponse{
		MerchantRequestID:   "SIM-" + accountRef,
		CheckoutRequestID:   "ws_CO_SIM_" + accountRef,
		ResponseCode:        "0",
		ResponseDescription: "Success. Request accepted for processing",
		CustomerMessage:     "Simulated STK push accepted (no M-Pesa credentials configured)",
	}
}

// stkPassword derives the Daraja request password for a timestamp in
// YYYYMMDDHHMMSS form.
func stkPassword(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// InitiateSTKPush prompts the customer's phone for payment. Provider and
// transport errors are returned with the upstream text intact so callers
// can surface them for diagnostics.
func InitiateSTKPush(phoneNumber string, amount float64, accountRef string) (*StkPushResponse, error) {
	if SimulatorMode() {
		log.Printf("⚠️ M-Pesa credentials absent, simulating STK push for %s", accountRef)
		return simulatedResponse(accountRef), nil
	}

	accessToken, err := GetAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get M-Pesa access token: %v", err)
	}

	shortCode := config.Config("MPESA_SHORTCODE")
	if shortCode == "" {
		shortCode = defaultShortCode
	}
	passkey := config.Config("MPESA_PASSKEY")
	if passkey == "" {
		passkey = defaultPasskey
	}
	receiverNumber := config.Config("MPESA_RECEIVER_NUMBER")
	if receiverNumber == "" {
		receiverNumber = defaultReceiver
	}
	partyB := config.Config("MPESA_TILL_NUMBER")
	if partyB == "" {
		partyB = shortCode
	}
	callbackURL := config.Config("MPESA_CALLBACK_URL")
	if callbackURL == "" {
		callbackURL = "https://example.invalid/api/mpesa/callback"
	}

	timestamp := time.Now().Format("20060102150405")
	formattedPhone := NormalizePhone(phoneNumber)

	payload := StkPushRequest{
		BusinessShortCode: shortCode,
		Password:          stkPassword(shortCode, passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            int64(math.Round(amount)),
		PartyA:            formattedPhone,
		PartyB:            partyB,
		PhoneNumber:       formattedPhone,
		CallBackURL:       callbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   fmt.Sprintf("Payment for %s to %s", accountRef, receiverNumber),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal STK payload: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL()+"/mpesa/stkpush/v1/processrequest", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create STK request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send STK request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read STK response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("M-Pesa API error response: %s", string(respBody))
		return nil, fmt.Errorf("M-Pesa STK push initiation failed: %d %s", resp.StatusCode, string(respBody))
	}

	var stkResponse StkPushResponse
	if err := json.Unmarshal(respBody, &stkResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal STK response: %v", err)
	}

	log.Println("✅ STK push initiated successfully for", accountRef)
	return &stkResponse, nil
}
