package payments

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	config "github.com/beautyexpress/salon_backend/configs"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"` // Daraja returns this as a string
}

var (
	mpesaToken       string
	mpesaTokenExpiry time.Time
	tokenMutex       sync.RWMutex
)

// baseURL selects the Daraja environment. Anything other than
// "production" means sandbox.
func baseURL() string {
	if config.Config("MPESA_ENV") == "production" {
		return "https://api.safaricom.co.ke"
	}
	return "https://sandbox.safaricom.co.ke"
}

// GetAccessToken returns a cached OAuth bearer token, fetching a new one
// when the cache is empty or within five minutes of expiry.
func GetAccessToken() (string, error) {
	tokenMutex.RLock()
	if mpesaToken != "" && time.Now().Before(mpesaTokenExpiry) {
		token := mpesaToken
		tokenMutex.RUnlock()
		return token, nil
	}
	tokenMutex.RUnlock()

	tokenMutex.Lock()
	defer tokenMutex.Unlock()

	if mpesaToken != "" && time.Now().Before(mpesaTokenExpiry) {
		return mpesaToken, nil
	}

	consumerKey := config.Config("MPESA_CONSUMER_KEY")
	consumerSecret := config.Config("MPESA_CONSUMER_SECRET")
	if consumerKey == "" || consumerSecret == "" {
		return "", fmt.Errorf("M-Pesa credentials not found in environment variables")
	}

	log.Println("Fetching new M-Pesa access token...")

	req, err := http.NewRequest("GET", baseURL()+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(consumerKey, consumerSecret)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("M-Pesa token generation failed: %s", resp.Status)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	expiresIn, err := strconv.Atoi(tokenResp.ExpiresIn)
	if err != nil || expiresIn <= 300 {
		expiresIn = 3600
	}

	mpesaToken = tokenResp.AccessToken
	mpesaTokenExpiry = time.Now().Add(time.Duration(expiresIn-300) * time.Second)
	log.Println("Successfully fetched and cached M-Pesa access token.")

	return mpesaToken, nil
}
