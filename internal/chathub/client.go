package chathub

import "pairchat/backend/internal/models"

// Client is the interface for one connected participant. It abstracts the
// underlying transport, so the hub can be exercised in tests without a live
// socket.
type Client interface {
	// GetConnID returns the server-assigned identity for this connection.
	// It is unique for the lifetime of the physical connection and is never
	// reused.
	GetConnID() string

	// GetSendChannel returns the channel the hub writes outbound events to.
	// Hub writes are non-blocking; a full buffer drops the event rather than
	// stalling the loop.
	GetSendChannel() chan<- models.ServerEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's outbound channel.
	Close()
}
