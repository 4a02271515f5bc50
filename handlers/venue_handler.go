package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"github.com/mkamau589/venue_booking/services"
)

type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=wedding conference party"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

func CreateVenue(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newVenue := models.Venue{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Type:        req.Type,
		ImageURL:    req.ImageURL,
		OwnerID:     ownerID,
	}
	if err := database.DB.Create(&newVenue).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add venue"})
	}

	return c.Status(fiber.StatusCreated).JSON(newVenue)
}

// ListVenues supports the browse page filters: free-text search on name or
// location, venue type, and a price range.
func ListVenues(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Venue{})

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("lower(name) LIKE lower(?) OR lower(location) LIKE lower(?)", pattern, pattern)
	}
	if venueType := c.Query("type"); venueType != "" && venueType != "all" {
		query = query.Where("type = ?", venueType)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if min, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", min)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if max, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", max)
		}
	}

	var venues []models.Venue
	if err := query.Find(&venues).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch venues"})
	}

	return c.JSON(venues)
}

func GetVenue(c *fiber.Ctx) error {
	venueID := c.Params("venueId")

	var venue models.Venue
	if err := database.DB.Preload("Owner").First(&venue, "id = ?", venueID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
	}

	return c.JSON(venue)
}

// GetVenueAvailability returns the start dates of pending bookings for the
// venue. Confirmed and cancelled bookings do not block a date; the date picker
// additionally disables every day before today.
func GetVenueAvailability(c *fiber.Ctx) error {
	venueID := c.Params("venueId")

	var venue models.Venue
	if err := database.DB.First(&venue, "id = ?", venueID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
	}

	var bookings []models.Booking
	if err := database.DB.Where("venue_id = ?", venue.ID).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	booked := services.BookedDates(bookings)
	bookedDates := make([]string, 0, len(booked))
	for _, d := range booked {
		bookedDates = append(bookedDates, d.Format("2006-01-02"))
	}

	return c.JSON(fiber.Map{
		"venue_id":     venue.ID,
		"booked_dates": bookedDates,
		"today":        time.Now().UTC().Format("2006-01-02"),
	})
}

func GetMyVenues(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	var venues []models.Venue
	if err := database.DB.
		Preload("Bookings").
		Where("owner_id = ?", ownerID).
		Find(&venues).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch venues"})
	}

	return c.JSON(venues)
}
