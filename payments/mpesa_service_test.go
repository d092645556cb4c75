package payments

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0712345678", "254712345678"},
		{"+254712345678", "254712345678"},
		{"254712345678", "254712345678"},
		{"0712 345 678", "254712345678"},
		{"712345678", "254712345678"},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimulatorModeWithoutCredentials(t *testing.T) {
	t.Setenv("MPESA_CONSUMER_KEY", "")
	t.Setenv("MPESA_CONSUMER_SECRET", "")

	if !SimulatorMode() {
		t.Fatal("expected simulator mode with no credentials configured")
	}
}

func TestInitiateSTKPushSimulated(t *testing.T) {
	t.Setenv("MPESA_CONSUMER_KEY", "")
	t.Setenv("MPESA_CONSUMER_SECRET", "")

	resp, err := InitiateSTKPush("0712345678", 500, "BOOKING-42")
	if err != nil {
		t.Fatalf("InitiateSTKPush returned error: %v", err)
	}
	if resp.ResponseCode != "0" {
		t.Errorf("ResponseCode = %q, want 0", resp.ResponseCode)
	}
	if resp.MerchantRequestID != "SIM-BOOKING-42" {
		t.Errorf("MerchantRequestID = %q, want SIM-BOOKING-42", resp.MerchantRequestID)
	}
	if resp.CheckoutRequestID != "ws_CO_SIM_BOOKING-42" {
		t.Errorf("CheckoutRequestID = %q, want ws_CO_SIM_BOOKING-42", resp.CheckoutRequestID)
	}
}

func TestStkPassword(t *testing.T) {
	// base64("174379" + "passkey" + "20260310120000")
	got := stkPassword("174379", "passkey", "20260310120000")
	want := "MTc0Mzc5cGFzc2tleTIwMjYwMzEwMTIwMDAw"
	if got != want {
		t.Errorf("stkPassword = %q, want %q", got, want)
	}
}
