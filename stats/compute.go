package stats

import (
	"sort"
	"time"

	"github.com/beautyexpress/salon_backend/models"
)

type StylistStat struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Snapshot is the derived dashboard view. It is recomputed from the
// collections on every change and never persisted.
type Snapshot struct {
	TodaysBookings  int           `json:"todaysBookings"`
	PendingMessages int           `json:"pendingMessages"`
	ActiveCustomers int           `json:"activeCustomers"`
	RevenueToday    float64       `json:"revenueToday"`
	MpesaCount      int           `json:"mpesaCount"`
	CashCount       int           `json:"cashCount"`
	TotalPayments   int           `json:"totalPayments"`
	StylistStats    []StylistStat `json:"stylistStats"`
	LastUpdate      time.Time     `json:"lastUpdate"`
}

// BookingSlice is the portion of the snapshot owned by the bookings
// stream. The conversations and clients streams never touch these fields.
type BookingSlice struct {
	TodaysBookings int
	RevenueToday   float64
	MpesaCount     int
	CashCount      int
	TotalPayments  int
	StylistStats   []StylistStat
}

// ComputeBookingSlice derives the bookings-owned metrics from a full
// collection fetch. "Today" is the wall-clock calendar day at call time,
// so figures roll over silently at local midnight.
func ComputeBookingSlice(bookings []models.Booking, now time.Time) BookingSlice {
	today := now.Format("2006-01-02")

	var slice BookingSlice
	stylistMap := make(map[string]*StylistStat)

	for i := range bookings {
		b := &bookings[i]

		if b.Date == today {
			slice.TodaysBookings++
			if b.Status == models.BookingStatusCompleted {
				slice.RevenueToday += b.RevenueValue()
			}
		}

		// Payment method counts span all completed bookings, not just today.
		if b.Status == models.BookingStatusCompleted {
			switch b.PaymentMethod {
			case "mpesa":
				slice.MpesaCount++
			case "cash":
				slice.CashCount++
			}
		}

		if b.StylistID == "" {
			continue
		}
		stat, ok := stylistMap[b.StylistID]
		if !ok {
			stat = &StylistStat{ID: b.StylistID, Name: b.Stylist}
			stylistMap[b.StylistID] = stat
		}
		if b.Status == models.BookingStatusCompleted {
			stat.Count++
			stat.Revenue += b.RevenueValue()
		}
	}

	slice.TotalPayments = slice.MpesaCount + slice.CashCount
	slice.StylistStats = sortedStylistStats(stylistMap)
	return slice
}

// ComputeBookingSliceWithRoster is the initial-validation variant: known
// stylists appear in the stats even before their first completed booking.
func ComputeBookingSliceWithRoster(bookings []models.Booking, stylists []models.Stylist, now time.Time) BookingSlice {
	slice := ComputeBookingSlice(bookings, now)

	seen := make(map[string]bool, len(slice.StylistStats))
	for _, stat := range slice.StylistStats {
		seen[stat.ID] = true
	}
	for _, stylist := range stylists {
		id := stylist.ID.String()
		if !seen[id] {
			slice.StylistStats = append(slice.StylistStats, StylistStat{ID: id, Name: stylist.Name})
		}
	}
	sort.Slice(slice.StylistStats, func(i, j int) bool {
		return slice.StylistStats[i].ID < slice.StylistStats[j].ID
	})
	return slice
}

// ComputePendingMessages sums unread counters across all conversations.
func ComputePendingMessages(conversations []models.Conversation) int {
	total := 0
	for _, conv := range conversations {
		total += conv.UnreadCount
	}
	return total
}

func sortedStylistStats(stylistMap map[string]*StylistStat) []StylistStat {
	out := make([]StylistStat, 0, len(stylistMap))
	for _, stat := range stylistMap {
		out = append(out, *stat)
	}
	// Map order is random; sort by ID so consecutive snapshots compare equal.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
