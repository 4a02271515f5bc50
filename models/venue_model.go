package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue types: wedding, conference, party.
type Venue struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`

	Owner    Profile   `gorm:"foreignkey:OwnerID" json:"owner,omitempty"`
	Bookings []Booking `json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
