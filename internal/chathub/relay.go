package chathub

import (
	"log"

	"pairchat/backend/internal/models"
)

// Relay stamps a chat message and rebroadcasts it to the sender's peer,
// sender excluded. Connections with no current room are ignored: the client
// may have raced a message against a leave that already completed.
// Must only be called from the Run goroutine (or a test that owns the hub).
func (h *Hub) Relay(connID string, msg models.Message) {
	code, ok := h.connRoom[connID]
	if !ok {
		return
	}
	room, ok := h.Registry.Get(code)
	if !ok {
		return
	}

	// Clients never set these; the server's clock and identity win.
	msg.ServerTimestamp = h.Now()
	msg.SenderConnectionID = connID

	room.AppendHistory(msg)

	h.broadcast(room, connID, models.ServerEvent{Event: models.EventMessage, Data: msg})
	log.Printf("Message in room %s from %s: %s", code, msg.Username, msg.Type)
}
