package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/beautyexpress/salon_backend/models"
)

type RevenueBucket struct {
	Date                string  `json:"date"`
	Revenue             float64 `json:"revenue"`
	Bookings            int     `json:"bookings"`
	AverageBookingValue float64 `json:"averageBookingValue"`
}

type ServiceStats struct {
	ServiceName  string  `json:"serviceName"`
	TotalRevenue float64 `json:"totalRevenue"`
	BookingCount int     `json:"bookingCount"`
	AveragePrice float64 `json:"averagePrice"`
}

type RevenueTotals struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalBookings       int     `json:"totalBookings"`
	AverageBookingValue float64 `json:"averageBookingValue"`
	TopService          string  `json:"topService"`
}

// RevenueReport is the on-demand historical breakdown behind the admin
// metrics dialog. Everything is computed in memory from one bulk fetch;
// at salon scale that beats maintaining composite indexes.
type RevenueReport struct {
	Daily        []RevenueBucket `json:"dailyRevenue"`
	Weekly       []RevenueBucket `json:"weeklyRevenue"`
	ServiceStats []ServiceStats  `json:"serviceStats"`
	Totals       RevenueTotals   `json:"totals"`
}

// FilterCompleted keeps only completed bookings; every reporter series is
// defined over this subset.
func FilterCompleted(bookings []models.Booking) []models.Booking {
	completed := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusCompleted {
			completed = append(completed, b)
		}
	}
	return completed
}

// DailyRevenue buckets completed bookings over the trailing 7 calendar
// days, oldest first, matching on the stored date string.
func DailyRevenue(completed []models.Booking, now time.Time) []RevenueBucket {
	buckets := make([]RevenueBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")

		var revenue float64
		count := 0
		for idx := range completed {
			if completed[idx].Date == dateStr {
				revenue += completed[idx].RevenueValue()
				count++
			}
		}
		buckets = append(buckets, RevenueBucket{
			Date:                day.Format("Jan 02"),
			Revenue:             revenue,
			Bookings:            count,
			AverageBookingValue: safeAverage(revenue, count),
		})
	}
	return buckets
}

// WeeklyRevenue buckets the trailing 4 seven-day windows, oldest first.
// Window k covers day offsets now-(7k+6) .. now-7k inclusive; boundaries
// are compared at calendar-day granularity, so a booking dated exactly on
// a window edge is included. Bookings with unparseable dates are skipped.
func WeeklyRevenue(completed []models.Booking, now time.Time) []RevenueBucket {
	today := truncateToDay(now)

	buckets := make([]RevenueBucket, 0, 4)
	for i := 3; i >= 0; i-- {
		weekStart := today.AddDate(0, 0, -(i*7 + 6))
		weekEnd := today.AddDate(0, 0, -(i * 7))

		var revenue float64
		count := 0
		for idx := range completed {
			day, err := time.ParseInLocation("2006-01-02", completed[idx].Date, now.Location())
			if err != nil {
				continue
			}
			if day.Before(weekStart) || day.After(weekEnd) {
				continue
			}
			revenue += completed[idx].RevenueValue()
			count++
		}
		buckets = append(buckets, RevenueBucket{
			Date:                weekLabel(4 - i),
			Revenue:             revenue,
			Bookings:            count,
			AverageBookingValue: safeAverage(revenue, count),
		})
	}
	return buckets
}

// ServiceBreakdown groups completed bookings by service and sorts by total
// revenue, highest first. Tie order between equal-revenue services carries
// no meaning; name order is used only to keep output stable.
func ServiceBreakdown(completed []models.Booking) []ServiceStats {
	type acc struct {
		revenue float64
		count   int
	}
	byService := make(map[string]*acc)

	for idx := range completed {
		name := serviceName(&completed[idx])
		entry, ok := byService[name]
		if !ok {
			entry = &acc{}
			byService[name] = entry
		}
		entry.revenue += completed[idx].RevenueValue()
		entry.count++
	}

	breakdown := make([]ServiceStats, 0, len(byService))
	for name, entry := range byService {
		breakdown = append(breakdown, ServiceStats{
			ServiceName:  name,
			TotalRevenue: entry.revenue,
			BookingCount: entry.count,
			AveragePrice: safeAverage(entry.revenue, entry.count),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalRevenue != breakdown[j].TotalRevenue {
			return breakdown[i].TotalRevenue > breakdown[j].TotalRevenue
		}
		return breakdown[i].ServiceName < breakdown[j].ServiceName
	})
	return breakdown
}

// ComputeRevenueReport assembles the full report from a raw bookings fetch.
func ComputeRevenueReport(bookings []models.Booking, now time.Time) RevenueReport {
	completed := FilterCompleted(bookings)
	breakdown := ServiceBreakdown(completed)

	var totalRevenue float64
	for idx := range completed {
		totalRevenue += completed[idx].RevenueValue()
	}

	topService := "None"
	if len(breakdown) > 0 {
		topService = breakdown[0].ServiceName
	}

	return RevenueReport{
		Daily:        DailyRevenue(completed, now),
		Weekly:       WeeklyRevenue(completed, now),
		ServiceStats: breakdown,
		Totals: RevenueTotals{
			TotalRevenue:        totalRevenue,
			TotalBookings:       len(completed),
			AverageBookingValue: safeAverage(totalRevenue, len(completed)),
			TopService:          topService,
		},
	}
}

func serviceName(b *models.Booking) string {
	if b.Service != "" {
		return b.Service
	}
	if len(b.Services) > 0 {
		return strings.Join(b.Services, ", ")
	}
	return "Unknown Service"
}

func safeAverage(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func weekLabel(n int) string {
	return fmt.Sprintf("Week %d", n)
}
