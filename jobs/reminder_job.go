package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"github.com/mkamau589/venue_booking/notifications"
)

// SendBookingReminders emails users whose confirmed bookings start tomorrow.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	now := time.Now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("User").
		Preload("Venue").
		Where("status = ? AND start_date >= ? AND start_date < ?", "confirmed", tomorrow, dayAfter).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Venue Booking is Tomorrow!"
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder that %s is booked for you tomorrow, %s.</p><p><b>Reference:</b> %s</p>",
			booking.User.FullName,
			booking.Venue.Name,
			booking.StartDate.Format("January 2, 2006"),
			booking.ReferenceCode,
		)

		go notifications.SendEmail(booking.User.FullName, booking.User.Email, emailSubject, emailBody)
	}
}
