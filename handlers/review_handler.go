package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview accepts one review per booking, from the user who booked,
// after the booking was confirmed.
func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	venueID := c.Params("venueId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where("venue_id = ? AND user_id = ? AND status = ?", venueID, userID, "confirmed").
			Order("start_date asc").
			First(&booking).Error; err != nil {
			return errors.New("reviews can only be submitted after a confirmed booking")
		}

		var existingReview models.Review
		if err := tx.Where("booking_id = ?", booking.ID).First(&existingReview).Error; err == nil {
			return errors.New("a review for this booking has already been submitted")
		}

		newReview = models.Review{
			VenueID:   booking.VenueID,
			UserID:    userID,
			BookingID: booking.ID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		return tx.Create(&newReview).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newReview)
}

func GetVenueReviews(c *fiber.Ctx) error {
	venueID := c.Params("venueId")

	var reviews []models.Review
	if err := database.DB.
		Preload("User").
		Where("venue_id = ?", venueID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}

	return c.JSON(reviews)
}
