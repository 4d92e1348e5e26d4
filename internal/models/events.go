package models

import "encoding/json"

// Event names exchanged with clients over the WebSocket.
const (
	// Inbound
	EventJoinRoom    = "join-room"
	EventSendMessage = "send-message"
	EventLeaveRoom   = "leave-room"

	// Outbound
	EventRoomJoined = "room-joined"
	EventRoomFull   = "room-full"
	EventUserJoined = "user-joined"
	EventUserLeft   = "user-left"
	EventMessage    = "message"
)

// ClientEvent is the envelope of an inbound frame. Data is decoded lazily
// once the event name is known.
type ClientEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ServerEvent is the envelope of an outbound frame.
type ServerEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// JoinRequest is the payload of join-room.
type JoinRequest struct {
	RoomCode string `json:"roomCode"`
	Username string `json:"username"`
}

// RoomJoined is the payload of room-joined, sent only to the joiner.
type RoomJoined struct {
	RoomCode string `json:"roomCode"`
	Users    int    `json:"users"`
}

// Presence is the payload of user-joined and user-left, broadcast to the
// other participants of the room.
type Presence struct {
	Username string `json:"username"`
	Users    int    `json:"users"`
}
