package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null" json:"venue_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;unique" json:"booking_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`

	Venue Venue   `gorm:"foreignkey:VenueID" json:"venue,omitempty"`
	User  Profile `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
