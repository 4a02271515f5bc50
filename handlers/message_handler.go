package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
)

type SendMessageRequest struct {
	VenueID    string `json:"venue_id" validate:"required,uuid"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required"`
}

// SendMessage is a one-shot insert; there is no delivery channel beyond the
// receiver polling their messages.
func SendMessage(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	senderID, _ := uuid.Parse(claims["user_id"].(string))

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	venueID, _ := uuid.Parse(req.VenueID)
	receiverID, _ := uuid.Parse(req.ReceiverID)

	message := models.ChatMessage{
		VenueID:    venueID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Message sent to owner!",
		"chat_message": message,
	})
}

func GetMyMessages(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	query := database.DB.
		Preload("Venue").
		Preload("Sender").
		Where("receiver_id = ?", userID).
		Order("created_at desc")

	if venueID := c.Query("venue_id"); venueID != "" {
		query = query.Where("venue_id = ?", venueID)
	}

	var messages []models.ChatMessage
	if err := query.Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	return c.JSON(messages)
}
