package chathub

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"pairchat/backend/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Image messages arrive as data URLs; the UI caps them at 5MB, the read
	// limit leaves headroom for the base64 overhead and the envelope.
	maxMessageSize = 8 << 20
)

// WebSocketClient implements Client over a gorilla/websocket connection.
type WebSocketClient struct {
	ID   string
	Conn *websocket.Conn
	Hub  *Hub
	Send chan models.ServerEvent
}

func (c *WebSocketClient) GetConnID() string                         { return c.ID }
func (c *WebSocketClient) GetSendChannel() chan<- models.ServerEvent { return c.Send }

// Run starts the 'pumps' for the WebSocket.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops writePump.
func (c *WebSocketClient) Close() {
	close(c.Send)
	// readPump stops on its own once Conn.Close() runs in its defer
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c // the hub turns this into an implicit leave
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var ev models.ClientEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Printf("Error decoding frame from client %s: %v", c.ID, err)
			continue
		}
		c.dispatch(ev)
	}
}

// dispatch routes one inbound frame to the hub's channels.
func (c *WebSocketClient) dispatch(ev models.ClientEvent) {
	switch ev.Event {
	case models.EventJoinRoom:
		var req models.JoinRequest
		if err := json.Unmarshal(ev.Data, &req); err != nil {
			log.Printf("Error decoding join-room from client %s: %v", c.ID, err)
			return
		}
		c.Hub.JoinCh <- JoinRequest{Client: c, RoomCode: req.RoomCode, Username: req.Username}

	case models.EventSendMessage:
		var msg models.Message
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			log.Printf("Error decoding send-message from client %s: %v", c.ID, err)
			return
		}
		c.Hub.IncomingCh <- Inbound{ConnID: c.ID, Message: msg}

	case models.EventLeaveRoom:
		c.Hub.LeaveCh <- c.ID

	default:
		log.Printf("Unknown event %q from client %s", ev.Event, c.ID)
	}
}

// writePump reads events from the Send channel and writes them to the
// WebSocket, one frame per event.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the WS connection
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.write(ev); err != nil {
				return
			}

			// Flush anything else already queued
			n := len(c.Send)
			for i := 0; i < n; i++ {
				if err := c.write(<-c.Send); err != nil {
					return
				}
			}

		case <-ticker.C:
			// Ping to keep the connection alive
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *WebSocketClient) write(ev models.ServerEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Error encoding frame for client %s: %v", c.ID, err)
		return nil
	}
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}
