package utils

import (
	"testing"

	"github.com/mkamau589/venue_booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGenerateBookingReference(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:generator?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Booking{}))

	code, err := GenerateBookingReference(db)
	require.NoError(t, err)
	assert.Len(t, code, referenceCodeLength)

	for _, r := range code {
		assert.Contains(t, letterBytes, string(r))
	}
}
