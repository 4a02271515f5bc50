package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"github.com/mkamau589/venue_booking/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func setupTestApp(t *testing.T) *fiber.App {
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Venue{},
		&models.Booking{},
		&models.ChatMessage{},
		&models.Review{},
	))
	database.DB = db

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.VenueRoutes(app)
	routes.BookingRoutes(app)
	routes.MessagingRoutes(app)
	routes.ReviewRoutes(app)
	return app
}

func authToken(t *testing.T, userID uuid.UUID, isVenueOwner bool) string {
	claims := jwt.MapClaims{
		"user_id":        userID.String(),
		"is_venue_owner": isVenueOwner,
		"exp":            time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func seedProfile(t *testing.T, fullName string, isVenueOwner bool) models.Profile {
	profile := models.Profile{
		FullName:     fullName,
		Email:        fmt.Sprintf("%s-%s@example.com", fullName, uuid.NewString()[:8]),
		Password:     "not-a-real-hash",
		IsVenueOwner: isVenueOwner,
	}
	require.NoError(t, database.DB.Create(&profile).Error)
	return profile
}

func seedVenue(t *testing.T, ownerID uuid.UUID, price float64) models.Venue {
	venue := models.Venue{
		Name:        "Sunset Gardens",
		Description: "An open-air garden venue.",
		Location:    "Riverside Drive",
		Price:       price,
		Type:        "wedding",
		OwnerID:     ownerID,
	}
	require.NoError(t, database.DB.Create(&venue).Error)
	return venue
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, respBody
}
