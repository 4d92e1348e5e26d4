package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairchat/backend/internal/models"
)

// TestMessageWireNames pins the JSON field names the web client depends on
// (useful for catching accidental tag changes during refactoring).
func TestMessageWireNames(t *testing.T) {
	msg := models.Message{
		Type:               "text",
		Text:               "hi",
		Username:           "alice",
		ServerTimestamp:    time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		SenderConnectionID: "conn-1",
	}

	raw, err := json.Marshal(models.ServerEvent{Event: models.EventMessage, Data: msg})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "message", decoded["event"])

	data := decoded["data"].(map[string]any)
	assert.Equal(t, "hi", data["text"])
	assert.Contains(t, data, "serverTimestamp")
	assert.Contains(t, data, "senderConnectionId")
	assert.NotContains(t, data, "imageData", "empty image field should be omitted")
}

func TestClientEventLazyData(t *testing.T) {
	raw := []byte(`{"event":"join-room","data":{"roomCode":"abc123","username":"alice"}}`)

	var ev models.ClientEvent
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, models.EventJoinRoom, ev.Event)

	var req models.JoinRequest
	require.NoError(t, json.Unmarshal(ev.Data, &req))
	assert.Equal(t, "abc123", req.RoomCode)
	assert.Equal(t, "alice", req.Username)
}
