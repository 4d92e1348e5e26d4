package chathub_test

import (
	"pairchat/backend/internal/models"
)

// MockClient is an in-memory Client for exercising the hub without sockets.
type MockClient struct {
	connID string
	Recv   chan models.ServerEvent
	Closed bool
}

func newMockClient(connID string) *MockClient {
	return &MockClient{
		connID: connID,
		Recv:   make(chan models.ServerEvent, 16),
	}
}

func (c *MockClient) GetConnID() string {
	return c.connID
}

func (c *MockClient) GetSendChannel() chan<- models.ServerEvent {
	return c.Recv
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.Closed = true
}

// drain returns every event currently queued for the client.
func (c *MockClient) drain() []models.ServerEvent {
	var out []models.ServerEvent
	for {
		select {
		case ev := <-c.Recv:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// lastEvent returns the most recent queued event, or an empty envelope.
func (c *MockClient) lastEvent() models.ServerEvent {
	evs := c.drain()
	if len(evs) == 0 {
		return models.ServerEvent{}
	}
	return evs[len(evs)-1]
}
