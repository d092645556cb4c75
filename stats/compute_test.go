package stats

import (
	"testing"
	"time"

	"github.com/beautyexpress/salon_backend/models"
)

func TestComputeBookingSliceRevenueToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	bookings := []models.Booking{
		{Date: today, Status: models.BookingStatusCompleted, Revenue: 500},
		{Date: today, Status: models.BookingStatusCompleted, Revenue: 800},
		{Date: today, Status: models.BookingStatusCompleted, Revenue: 1500},
		{Date: today, Status: models.BookingStatusPending, Revenue: 1000},
		{Date: yesterday, Status: models.BookingStatusCompleted, Revenue: 9999},
	}

	slice := ComputeBookingSlice(bookings, now)

	if slice.RevenueToday != 2800 {
		t.Errorf("RevenueToday = %v, want 2800", slice.RevenueToday)
	}
	// All of today's bookings count, regardless of status.
	if slice.TodaysBookings != 4 {
		t.Errorf("TodaysBookings = %d, want 4", slice.TodaysBookings)
	}
}

func TestComputeBookingSliceRevenueFallback(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	today := now.Format("2006-01-02")

	bookings := []models.Booking{
		{Date: today, Status: models.BookingStatusCompleted, Amount: 300, Revenue: 100, Price: 50},
		{Date: today, Status: models.BookingStatusCompleted, Revenue: 200, Price: 50},
		{Date: today, Status: models.BookingStatusCompleted, Price: 75},
	}

	slice := ComputeBookingSlice(bookings, now)

	if slice.RevenueToday != 575 {
		t.Errorf("RevenueToday = %v, want 575 (amount then revenue then price)", slice.RevenueToday)
	}
}

func TestComputeBookingSlicePaymentCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	lastWeek := now.AddDate(0, 0, -7).Format("2006-01-02")

	bookings := []models.Booking{
		{Date: lastWeek, Status: models.BookingStatusCompleted, PaymentMethod: "mpesa"},
		{Date: lastWeek, Status: models.BookingStatusCompleted, PaymentMethod: "mpesa"},
		{Date: lastWeek, Status: models.BookingStatusCompleted, PaymentMethod: "cash"},
		{Date: lastWeek, Status: models.BookingStatusCompleted},
		{Date: lastWeek, Status: models.BookingStatusPending, PaymentMethod: "cash"},
	}

	slice := ComputeBookingSlice(bookings, now)

	if slice.MpesaCount != 2 {
		t.Errorf("MpesaCount = %d, want 2", slice.MpesaCount)
	}
	if slice.CashCount != 1 {
		t.Errorf("CashCount = %d, want 1", slice.CashCount)
	}
	if slice.TotalPayments != 3 {
		t.Errorf("TotalPayments = %d, want 3", slice.TotalPayments)
	}
}

func TestComputeBookingSliceStylistStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	today := now.Format("2006-01-02")

	bookings := []models.Booking{
		{Date: today, Status: models.BookingStatusCompleted, StylistID: "s1", Stylist: "Sarah", Revenue: 500},
		{Date: today, Status: models.BookingStatusCompleted, StylistID: "s1", Stylist: "Sarah", Revenue: 300},
		{Date: today, Status: models.BookingStatusPending, StylistID: "s1", Stylist: "Sarah", Revenue: 900},
		{Date: today, Status: models.BookingStatusCompleted, StylistID: "s2", Stylist: "Emma", Revenue: 800},
		// No stylist assigned, must not appear.
		{Date: today, Status: models.BookingStatusCompleted, Revenue: 100},
	}

	slice := ComputeBookingSlice(bookings, now)

	if len(slice.StylistStats) != 2 {
		t.Fatalf("StylistStats length = %d, want 2", len(slice.StylistStats))
	}

	sarah := slice.StylistStats[0]
	if sarah.ID != "s1" || sarah.Count != 2 || sarah.Revenue != 800 {
		t.Errorf("stylist s1 = %+v, want count 2 revenue 800", sarah)
	}
	emma := slice.StylistStats[1]
	if emma.ID != "s2" || emma.Count != 1 || emma.Revenue != 800 {
		t.Errorf("stylist s2 = %+v, want count 1 revenue 800", emma)
	}
}

func TestComputeBookingSliceWithRosterAddsZeroRows(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	stylists := []models.Stylist{
		{Name: "Newcomer"},
	}

	slice := ComputeBookingSliceWithRoster(nil, stylists, now)

	if len(slice.StylistStats) != 1 {
		t.Fatalf("StylistStats length = %d, want 1", len(slice.StylistStats))
	}
	stat := slice.StylistStats[0]
	if stat.Name != "Newcomer" || stat.Count != 0 || stat.Revenue != 0 {
		t.Errorf("roster stylist = %+v, want zeroed stats", stat)
	}
}

func TestComputePendingMessages(t *testing.T) {
	conversations := []models.Conversation{
		{UnreadCount: 1},
		{UnreadCount: 2},
		{UnreadCount: 0},
	}

	if got := ComputePendingMessages(conversations); got != 3 {
		t.Errorf("ComputePendingMessages = %d, want 3", got)
	}
	if got := ComputePendingMessages(nil); got != 0 {
		t.Errorf("ComputePendingMessages(nil) = %d, want 0", got)
	}
}
