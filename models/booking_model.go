package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking covers a single calendar day: StartDate at 00:00:00.000 and
// EndDate at 23:59:59.999 of the selected day.
// Status transitions: pending -> confirmed (payment) or pending -> cancelled.
// Both are terminal. Rows are never deleted.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VenueID       uuid.UUID `gorm:"type:uuid;not null" json:"venue_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	ReferenceCode string    `gorm:"size:10;unique" json:"reference_code"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	EndDate       time.Time `gorm:"not null" json:"end_date"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus string    `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentAmount float64   `gorm:"type:numeric(10,2);not null" json:"payment_amount"`

	// Set only when Status is cancelled.
	CancellationReason *string `gorm:"type:text" json:"cancellation_reason"`

	Venue Venue   `gorm:"foreignkey:VenueID" json:"venue,omitempty"`
	User  Profile `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
