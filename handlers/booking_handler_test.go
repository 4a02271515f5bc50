package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau589/venue_booking/database"
	"github.com/mkamau589/venue_booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingSetsDayBoundsAndDefaults(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)

	today := time.Now().UTC().Format("2006-01-02")
	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings", authToken(t, user.ID, false), map[string]interface{}{
		"venue_id": venue.ID.String(),
		"date":     today,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&booking).Error)

	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, "pending", booking.PaymentStatus)
	assert.Equal(t, 500.0, booking.PaymentAmount)
	assert.NotEmpty(t, booking.ReferenceCode)

	start := booking.StartDate.UTC()
	assert.Equal(t, today, start.Format("2006-01-02"))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())
	assert.Equal(t, 0, start.Nanosecond())

	end := booking.EndDate.UTC()
	assert.Equal(t, today, end.Format("2006-01-02"))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 999000000, end.Nanosecond())
}

func TestCreateBookingRequiresDate(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings", authToken(t, user.ID, false), map[string]interface{}{
		"venue_id": venue.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	database.DB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings", "", map[string]interface{}{
		"venue_id": venue.ID.String(),
		"date":     time.Now().UTC().Format("2006-01-02"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	database.DB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	app := setupTestApp(t)
	user := seedProfile(t, "guest", false)

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings", authToken(t, user.ID, false), map[string]interface{}{
		"venue_id": "5cb2f260-8a53-4a44-a2e1-8d9b1c15e2ab",
		"date":     time.Now().UTC().Format("2006-01-02"),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Two bookings for the same venue and date both succeed: there is no
// uniqueness constraint and no availability re-check on insert.
func TestDuplicateBookingsForSameDateBothSucceed(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	userA := seedProfile(t, "guest-a", false)
	userB := seedProfile(t, "guest-b", false)

	date := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	payload := map[string]interface{}{"venue_id": venue.ID.String(), "date": date}

	respA, _ := doRequest(t, app, "POST", "/api/v1/bookings", authToken(t, userA.ID, false), payload)
	respB, _ := doRequest(t, app, "POST", "/api/v1/bookings", authToken(t, userB.ID, false), payload)

	assert.Equal(t, http.StatusCreated, respA.StatusCode)
	assert.Equal(t, http.StatusCreated, respB.StatusCode)

	var count int64
	database.DB.Model(&models.Booking{}).Where("venue_id = ?", venue.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCancelBookingByUserRequiresReason(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, user.ID, false), map[string]interface{}{
		"reason": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got models.Booking
	require.NoError(t, database.DB.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.CancellationReason)
}

func TestCancelBookingByUserWithNotifyOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, user.ID, false), map[string]interface{}{
		"reason":       "Change of plans",
		"notify_owner": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Booking
	require.NoError(t, database.DB.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "Change of plans", *got.CancellationReason)

	var message models.ChatMessage
	require.NoError(t, database.DB.Where("receiver_id = ?", owner.ID).First(&message).Error)
	assert.Equal(t, user.ID, message.SenderID)
	assert.Equal(t, venue.ID, message.VenueID)
	assert.Contains(t, message.Content, venue.Name)
	assert.Contains(t, message.Content, "Change of plans")
}

func TestCancelBookingByOwnerWithoutReasonOrNotification(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, owner.ID, true), map[string]interface{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Booking
	require.NoError(t, database.DB.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, "cancelled", got.Status)
	assert.Nil(t, got.CancellationReason)

	var count int64
	database.DB.Model(&models.ChatMessage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// An owner-initiated cancel notification is authored by the owner, not
// attributed to the booking's user.
func TestCancelBookingByOwnerNotificationSenderIsOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, owner.ID, true), map[string]interface{}{
		"reason":       "Venue under maintenance",
		"notify_owner": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var message models.ChatMessage
	require.NoError(t, database.DB.Where("venue_id = ?", venue.ID).First(&message).Error)
	assert.Equal(t, owner.ID, message.SenderID)
	assert.NotEqual(t, user.ID, message.SenderID)
}

func TestCancelBookingByStrangerForbidden(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	stranger := seedProfile(t, "stranger", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, stranger.ID, false), map[string]interface{}{
		"reason": "not mine",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCancelledBookingIsTerminal(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "cancelled")

	resp, _ := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel", authToken(t, user.ID, false), map[string]interface{}{
		"reason": "again",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/pay", authToken(t, user.ID, false), map[string]interface{}{
		"amount": 500,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Payment always succeeds through the simulated provider, regardless of the
// amount sent by the client.
func TestPayBookingConfirmsUnconditionally(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	booking := seedBooking(t, venue, user, "pending")

	resp, body := doRequest(t, app, "POST", "/api/v1/bookings/"+booking.ID.String()+"/pay", authToken(t, user.ID, false), map[string]interface{}{
		"amount": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "confirmed", result.Booking.Status)
	assert.Equal(t, "completed", result.Booking.PaymentStatus)

	var got models.Booking
	require.NoError(t, database.DB.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "completed", got.PaymentStatus)
}

func TestGetMyBookings(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)
	other := seedProfile(t, "other", false)
	seedBooking(t, venue, user, "pending")
	seedBooking(t, venue, other, "pending")

	resp, body := doRequest(t, app, "GET", "/api/v1/bookings/me", authToken(t, user.ID, false), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(body, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, user.ID, bookings[0].UserID)
	assert.Equal(t, venue.Name, bookings[0].Venue.Name)
}

func seedBooking(t *testing.T, venue models.Venue, user models.Profile, status string) models.Booking {
	day := time.Now().UTC().AddDate(0, 0, 3)
	booking := models.Booking{
		VenueID:       venue.ID,
		UserID:        user.ID,
		ReferenceCode: uuid.NewString()[:8],
		StartDate:     time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999000000, time.UTC),
		Status:        status,
		PaymentStatus: "pending",
		PaymentAmount: venue.Price,
	}
	require.NoError(t, database.DB.Create(&booking).Error)
	return booking
}
