package utils

import (
	"testing"
	"time"
)

func TestParseTimeSlot(t *testing.T) {
	got, err := ParseTimeSlot("2026-03-10", "2:30 PM")
	if err != nil {
		t.Fatalf("ParseTimeSlot returned error: %v", err)
	}

	want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseTimeSlot = %v, want %v", got, want)
	}
}

func TestParseTimeSlotInvalid(t *testing.T) {
	if _, err := ParseTimeSlot("2026-03-10", "25:00"); err == nil {
		t.Error("expected error for invalid slot")
	}
	if _, err := ParseTimeSlot("bad-date", "2:30 PM"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestConversationID(t *testing.T) {
	if got := ConversationID("client1"); got != "client1_admin" {
		t.Errorf("ConversationID = %q, want client1_admin", got)
	}
}

func TestCustomerUIDInvertsConversationID(t *testing.T) {
	if got := CustomerUID(ConversationID("client1")); got != "client1" {
		t.Errorf("CustomerUID = %q, want client1", got)
	}
	// Ids without the suffix pass through untouched.
	if got := CustomerUID("weird-id"); got != "weird-id" {
		t.Errorf("CustomerUID = %q, want weird-id", got)
	}
}
