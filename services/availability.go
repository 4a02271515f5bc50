package services

import (
	"time"

	"github.com/mkamau589/venue_booking/models"
)

// BookedDates returns the start dates, truncated to the day, of the pending
// bookings in the list. Confirmed and cancelled bookings never block a date.
func BookedDates(bookings []models.Booking) []time.Time {
	var dates []time.Time
	for _, b := range bookings {
		if b.Status != "pending" {
			continue
		}
		dates = append(dates, dayOf(b.StartDate))
	}
	return dates
}

// IsDateDisabled reports whether the date picker should block date: every day
// strictly before today is blocked, and so is every pending start date.
func IsDateDisabled(date, today time.Time, booked []time.Time) bool {
	day := dayOf(date)
	if day.Before(dayOf(today)) {
		return true
	}
	for _, b := range booked {
		if day.Equal(dayOf(b)) {
			return true
		}
	}
	return false
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
