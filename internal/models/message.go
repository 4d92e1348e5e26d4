package models

import "time"

// Message is a single chat event relayed between the participants of a room.
// The server stamps ServerTimestamp and SenderConnectionID before rebroadcast;
// everything else is carried through from the sender as-is, including types
// the server does not recognize.
type Message struct {
	// Type is the kind of message: "text", "image", or anything a future
	// client sends.
	Type string `json:"type"`
	// Text is the body of a text message.
	Text string `json:"text,omitempty"`
	// ImageData is an image as a data URL. The UI caps these at 5MB; the
	// server does not re-validate.
	ImageData string `json:"imageData,omitempty"`
	// Username is the sender's display name, chosen client-side.
	Username string `json:"username"`

	// ServerTimestamp is assigned by the relay. Client-supplied values are
	// overwritten.
	ServerTimestamp time.Time `json:"serverTimestamp"`
	// SenderConnectionID is the transient identity of the sending connection.
	SenderConnectionID string `json:"senderConnectionId,omitempty"`
}
