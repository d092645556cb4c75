package services

import (
	"testing"
	"time"

	"github.com/beautyexpress/salon_backend/models"
)

func day(now time.Time, offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestDailyRevenueBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	completed := []models.Booking{
		{Date: day(now, 0), Status: models.BookingStatusCompleted, Revenue: 500},
		{Date: day(now, 0), Status: models.BookingStatusCompleted, Revenue: 300},
		{Date: day(now, -6), Status: models.BookingStatusCompleted, Revenue: 1000},
		// Outside the trailing week, must not be bucketed.
		{Date: day(now, -7), Status: models.BookingStatusCompleted, Revenue: 9999},
	}

	buckets := DailyRevenue(completed, now)

	if len(buckets) != 7 {
		t.Fatalf("bucket count = %d, want 7", len(buckets))
	}
	if buckets[0].Date != now.AddDate(0, 0, -6).Format("Jan 02") {
		t.Errorf("first bucket label = %q, want oldest day first", buckets[0].Date)
	}
	if buckets[0].Revenue != 1000 || buckets[0].Bookings != 1 {
		t.Errorf("oldest bucket = %+v, want revenue 1000 from 1 booking", buckets[0])
	}
	if buckets[6].Revenue != 800 || buckets[6].Bookings != 2 {
		t.Errorf("today bucket = %+v, want revenue 800 from 2 bookings", buckets[6])
	}
	if buckets[6].AverageBookingValue != 400 {
		t.Errorf("today average = %v, want 400", buckets[6].AverageBookingValue)
	}
	for i := 1; i < 6; i++ {
		if buckets[i].Revenue != 0 {
			t.Errorf("bucket %d revenue = %v, want 0", i, buckets[i].Revenue)
		}
	}
}

func TestWeeklyRevenueWindows(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)

	completed := []models.Booking{
		// Current window: now-6 .. now.
		{Date: day(now, 0), Status: models.BookingStatusCompleted, Revenue: 100},
		{Date: day(now, -6), Status: models.BookingStatusCompleted, Revenue: 200},
		// Previous window: now-13 .. now-7. Both edges inclusive.
		{Date: day(now, -7), Status: models.BookingStatusCompleted, Revenue: 400},
		{Date: day(now, -13), Status: models.BookingStatusCompleted, Revenue: 800},
		// Oldest window: now-27 .. now-21.
		{Date: day(now, -27), Status: models.BookingStatusCompleted, Revenue: 1600},
		// Past all four windows.
		{Date: day(now, -28), Status: models.BookingStatusCompleted, Revenue: 9999},
		// Malformed dates are skipped, never counted.
		{Date: "not-a-date", Status: models.BookingStatusCompleted, Revenue: 5000},
	}

	buckets := WeeklyRevenue(completed, now)

	if len(buckets) != 4 {
		t.Fatalf("bucket count = %d, want 4", len(buckets))
	}
	labels := []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	for i, want := range labels {
		if buckets[i].Date != want {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Date, want)
		}
	}
	if buckets[0].Revenue != 1600 {
		t.Errorf("Week 1 revenue = %v, want 1600", buckets[0].Revenue)
	}
	if buckets[1].Revenue != 0 {
		t.Errorf("Week 2 revenue = %v, want 0", buckets[1].Revenue)
	}
	if buckets[2].Revenue != 1200 || buckets[2].Bookings != 2 {
		t.Errorf("Week 3 = %+v, want both edge days included for 1200", buckets[2])
	}
	if buckets[3].Revenue != 300 {
		t.Errorf("Week 4 revenue = %v, want 300", buckets[3].Revenue)
	}
}

func TestServiceBreakdownOrderingAndFallbacks(t *testing.T) {
	completed := []models.Booking{
		{Service: "Acrylics", Status: models.BookingStatusCompleted, Revenue: 1500},
		{Service: "Acrylics", Status: models.BookingStatusCompleted, Revenue: 1500},
		{Service: "Pedicure + Gel", Status: models.BookingStatusCompleted, Revenue: 800},
		{Services: []string{"Gum-gel", "Nail-removal"}, Status: models.BookingStatusCompleted, Revenue: 900},
		{Status: models.BookingStatusCompleted, Revenue: 50},
	}

	breakdown := ServiceBreakdown(completed)

	if len(breakdown) != 4 {
		t.Fatalf("breakdown length = %d, want 4", len(breakdown))
	}
	if breakdown[0].ServiceName != "Acrylics" || breakdown[0].TotalRevenue != 3000 {
		t.Errorf("top service = %+v, want Acrylics at 3000", breakdown[0])
	}
	if breakdown[0].AveragePrice != 1500 {
		t.Errorf("Acrylics average = %v, want 1500", breakdown[0].AveragePrice)
	}
	if breakdown[1].ServiceName != "Gum-gel, Nail-removal" {
		t.Errorf("services array fallback = %q, want joined names", breakdown[1].ServiceName)
	}
	if breakdown[3].ServiceName != "Unknown Service" {
		t.Errorf("empty service fallback = %q, want Unknown Service", breakdown[3].ServiceName)
	}
}

func TestComputeRevenueReportTotals(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	bookings := []models.Booking{
		{Date: day(now, 0), Service: "Acrylics", Status: models.BookingStatusCompleted, Revenue: 1500},
		{Date: day(now, 0), Service: "Gum-gel", Status: models.BookingStatusCompleted, Amount: 800},
		{Date: day(now, 0), Service: "Acrylics", Status: models.BookingStatusPending, Revenue: 5000},
	}

	report := ComputeRevenueReport(bookings, now)

	if report.Totals.TotalRevenue != 2300 {
		t.Errorf("TotalRevenue = %v, want 2300 (completed only)", report.Totals.TotalRevenue)
	}
	if report.Totals.TotalBookings != 2 {
		t.Errorf("TotalBookings = %d, want 2", report.Totals.TotalBookings)
	}
	if report.Totals.AverageBookingValue != 1150 {
		t.Errorf("AverageBookingValue = %v, want 1150", report.Totals.AverageBookingValue)
	}
	if report.Totals.TopService != "Acrylics" {
		t.Errorf("TopService = %q, want Acrylics", report.Totals.TopService)
	}
}

func TestComputeRevenueReportEmpty(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	report := ComputeRevenueReport(nil, now)

	if report.Totals.TopService != "None" {
		t.Errorf("TopService = %q, want None", report.Totals.TopService)
	}
	if report.Totals.AverageBookingValue != 0 {
		t.Errorf("AverageBookingValue = %v, want 0 with no bookings", report.Totals.AverageBookingValue)
	}
	if len(report.Daily) != 7 || len(report.Weekly) != 4 {
		t.Errorf("series lengths = %d daily %d weekly, want 7 and 4", len(report.Daily), len(report.Weekly))
	}
}
