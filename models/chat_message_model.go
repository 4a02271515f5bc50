package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is append-only; there is no edit or delete.
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VenueID    uuid.UUID `gorm:"type:uuid;not null" json:"venue_id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	Venue    Venue   `gorm:"foreignkey:VenueID" json:"venue,omitempty"`
	Sender   Profile `gorm:"foreignkey:SenderID" json:"sender,omitempty"`
	Receiver Profile `gorm:"foreignkey:ReceiverID" json:"receiver,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
