package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"github.com/mkamau589/venue_booking/notifications"
	"github.com/mkamau589/venue_booking/payments"
	"github.com/mkamau589/venue_booking/services"
	"github.com/mkamau589/venue_booking/utils"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	VenueID string `json:"venue_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateBooking inserts a pending booking spanning the selected calendar day.
// The date is not re-checked against existing bookings and there is no
// uniqueness constraint on (venue, date): two concurrent requests for the same
// day both succeed. The calendar only disables already-pending dates.
func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please select a date"})
	}
	venueID, _ := uuid.Parse(req.VenueID)

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", venueID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
	}

	day, _ := time.Parse("2006-01-02", req.Date)
	startDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999000000, time.UTC)

	referenceCode, err := utils.GenerateBookingReference(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book venue"})
	}

	booking := models.Booking{
		VenueID:       venue.ID,
		UserID:        userID,
		ReferenceCode: referenceCode,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        "pending",
		PaymentStatus: "pending",
		PaymentAmount: venue.Price,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book venue"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking request sent successfully!",
		"booking": booking,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	if err := database.DB.
		Preload("Venue").
		Where("user_id = ?", userID).
		Order("start_date asc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.
		Preload("Venue").
		Preload("User").
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

type CancelBookingRequest struct {
	Reason      string `json:"reason"`
	NotifyOwner bool   `json:"notify_owner"`
}

// CancelBooking moves a pending booking to cancelled. Allowed to the booking's
// user or the venue's owner. A reason is required when the booking's user
// cancels and optional when the owner does. When NotifyOwner is set, a chat
// message is inserted for the venue owner.
func CancelBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Venue").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	isUser := booking.UserID == actorID
	isOwner := booking.Venue.OwnerID == actorID
	if !isUser && !isOwner {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.Status != "pending" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending bookings can be cancelled"})
	}

	reason := strings.TrimSpace(req.Reason)
	if isUser && !isOwner && reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please provide a cancellation reason"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		booking.Status = "cancelled"
		if reason != "" {
			booking.CancellationReason = &reason
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if req.NotifyOwner {
			message := models.ChatMessage{
				VenueID:    booking.VenueID,
				SenderID:   actorID,
				ReceiverID: booking.Venue.OwnerID,
				Content:    fmt.Sprintf("Booking cancelled for %s. Reason: %s", booking.Venue.Name, reason),
			}
			if err := tx.Create(&message).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	return c.JSON(fiber.Map{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}

type PayBookingRequest struct {
	Amount float64 `json:"amount"`
}

// PayBooking charges the configured payment provider and confirms the booking.
// The amount is display-only and is not verified against the booking.
func PayBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var req PayBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Venue.Owner").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if booking.UserID != actorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.Status != "pending" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending bookings can be paid for"})
	}

	if _, err := payments.Active.Charge(req.Amount, "USD", booking.ReferenceCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment failed"})
	}

	booking.PaymentStatus = "completed"
	booking.Status = "confirmed"
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	go func() {
		notifications.SendEmail(booking.User.FullName, booking.User.Email, "Your Booking is Confirmed!", fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your payment was successful and %s is booked for %s.</p>", booking.Venue.Name, booking.StartDate.Format("January 2, 2006")))
		notifications.SendEmail(booking.Venue.Owner.FullName, booking.Venue.Owner.Email, "You Have a New Booking!", fmt.Sprintf("<h1>New Booking</h1><p>%s has been booked for %s.</p>", booking.Venue.Name, booking.StartDate.Format("January 2, 2006")))
	}()

	return c.JSON(fiber.Map{
		"message": "Payment successful!",
		"booking": booking,
	})
}

func GetBookingReceipt(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Venue").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if booking.UserID != actorID && booking.Venue.OwnerID != actorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.PaymentStatus != "completed" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Receipts are only available for paid bookings"})
	}

	pdf, err := services.GenerateBookingReceipt(booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate receipt"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", booking.ReferenceCode))
	return c.Send(pdf)
}
