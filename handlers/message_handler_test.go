package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mkamau589/venue_booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndReceiveMessage(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)

	resp, _ := doRequest(t, app, "POST", "/api/v1/messages", authToken(t, user.ID, false), map[string]interface{}{
		"venue_id":    venue.ID.String(),
		"receiver_id": owner.ID.String(),
		"content":     "Hi, I'm interested in your venue!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, "GET", "/api/v1/messages", authToken(t, owner.ID, true), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(body, &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Hi, I'm interested in your venue!", messages[0].Content)
	assert.Equal(t, user.ID, messages[0].SenderID)
	assert.Equal(t, venue.ID, messages[0].VenueID)

	// The sender's own inbox stays empty; messages are keyed by receiver.
	resp, body = doRequest(t, app, "GET", "/api/v1/messages", authToken(t, user.ID, false), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	messages = nil
	require.NoError(t, json.Unmarshal(body, &messages))
	assert.Empty(t, messages)
}

func TestSendMessageRequiresContent(t *testing.T) {
	app := setupTestApp(t)
	owner := seedProfile(t, "owner", true)
	venue := seedVenue(t, owner.ID, 500)
	user := seedProfile(t, "guest", false)

	resp, _ := doRequest(t, app, "POST", "/api/v1/messages", authToken(t, user.ID, false), map[string]interface{}{
		"venue_id":    venue.ID.String(),
		"receiver_id": owner.ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
