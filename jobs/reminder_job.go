package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/notifications"
	"github.com/beautyexpress/salon_backend/utils"
)

// SendAppointmentReminders emails customers whose confirmed appointment
// starts about an hour from now. Bookings store the slot as a display string,
// so the window check happens in-process after fetching today's confirmed
// rows.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()
	today := now.Format("2006-01-02")

	var bookings []models.Booking
	err := database.DB.
		Where("status = ? AND date = ?", models.BookingStatusConfirmed, today).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	sent := 0
	for _, booking := range bookings {
		if booking.CustomerEmail == "" {
			continue
		}

		startsAt, err := utils.ParseTimeSlot(booking.Date, booking.Time)
		if err != nil {
			log.Printf("Skipping reminder for booking %s: %v", booking.ID, err)
			continue
		}
		// The job runs every five minutes, so a five minute window an
		// hour out means each booking is reminded exactly once.
		if startsAt.Before(now.Add(60*time.Minute)) || startsAt.After(now.Add(65*time.Minute)) {
			continue
		}

		subject := "Appointment Reminder"
		body := fmt.Sprintf(
			"<h1>See You Soon!</h1><p>Hi %s,</p><p>This is a reminder that your %s appointment with %s is today at %s.</p>",
			booking.CustomerName, booking.Service, booking.Stylist, booking.Time,
		)
		notifications.SendEmail(booking.CustomerName, booking.CustomerEmail, subject, body)

		if booking.CustomerID != "" {
			notification := models.Notification{
				UserID:  booking.CustomerID,
				Title:   "Upcoming Appointment",
				Message: fmt.Sprintf("Your %s appointment is today at %s.", booking.Service, booking.Time),
				Type:    "booking",
			}
			if err := database.DB.Create(&notification).Error; err != nil {
				log.Printf("Error creating reminder notification: %v", err)
			}
		}
		sent++
	}

	if sent > 0 {
		log.Printf("Sent %d appointment reminder(s).", sent)
	}
}
