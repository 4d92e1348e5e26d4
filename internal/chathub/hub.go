package chathub

import (
	"log"
	"time"

	"pairchat/backend/internal/config"
	"pairchat/backend/internal/models"
)

// JoinRequest asks the hub to place a registered client into a room.
type JoinRequest struct {
	Client   Client
	RoomCode string
	Username string
}

// Inbound is a chat message received from a client, tagged with the sending
// connection.
type Inbound struct {
	ConnID  string
	Message models.Message
}

// Hub owns the registry and every room mutation. All state changes happen on
// its single Run goroutine, one event at a time, which is what makes the
// capacity and history invariants hold without locks.
type Hub struct {
	Clients  map[string]Client // connID -> client
	Registry *Registry

	// Channels
	RegisterCh   chan Client
	UnregisterCh chan Client
	JoinCh       chan JoinRequest
	LeaveCh      chan string // connID, explicit leave-room
	IncomingCh   chan Inbound
	SweepCh      chan time.Duration // maxAge, sent by the reaper

	// Now is the clock used for stamping. Tests replace it.
	Now func() time.Time

	connRoom map[string]string // connID -> room code
	statsCh  chan chan []models.RoomSummary
}

// NewHub creates a hub over the given registry.
func NewHub(reg *Registry) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		Registry:     reg,
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		JoinCh:       make(chan JoinRequest),
		LeaveCh:      make(chan string),
		IncomingCh:   make(chan Inbound),
		SweepCh:      make(chan time.Duration),
		Now:          time.Now,
		connRoom:     make(map[string]string),
		statsCh:      make(chan chan []models.RoomSummary),
	}
}

// Run is the hub's main dispatcher goroutine.
func (h *Hub) Run() {
	log.Println("Chat hub started.")

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetConnID()] = client
			log.Printf("Client connected: %s (%d online)", client.GetConnID(), len(h.Clients))

		case client := <-h.UnregisterCh:
			h.disconnect(client)

		case req := <-h.JoinCh:
			h.Join(req.Client, req.RoomCode, req.Username)

		case connID := <-h.LeaveCh:
			h.Leave(connID, true)

		case in := <-h.IncomingCh:
			h.Relay(in.ConnID, in.Message)

		case maxAge := <-h.SweepCh:
			if removed := h.Registry.Sweep(h.Now(), maxAge); removed > 0 {
				log.Printf("Reaper removed %d stale rooms", removed)
			}

		case reply := <-h.statsCh:
			reply <- h.Registry.List()
		}
	}
}

// Join places client into the room named by code, creating the room on first
// use. A third participant is rejected with room-full and nothing changes.
// Must only be called from the Run goroutine (or a test that owns the hub).
func (h *Hub) Join(client Client, code, username string) {
	connID := client.GetConnID()

	// A connection sits in at most one room; switching rooms is an implicit
	// leave of the old one, peer notification included.
	if _, ok := h.connRoom[connID]; ok {
		h.Leave(connID, true)
	}

	code = NormalizeCode(code)
	room := h.Registry.GetOrCreate(code)

	if len(room.Participants) >= config.RoomCapacity {
		h.emit(client, models.ServerEvent{Event: models.EventRoomFull, Data: struct{}{}})
		log.Printf("Join rejected: room %s is full", code)
		return
	}

	room.Participants[connID] = Participant{Username: username, JoinedAt: h.Now()}
	h.connRoom[connID] = code

	users := len(room.Participants)
	h.emit(client, models.ServerEvent{
		Event: models.EventRoomJoined,
		Data:  models.RoomJoined{RoomCode: code, Users: users},
	})
	h.broadcast(room, connID, models.ServerEvent{
		Event: models.EventUserJoined,
		Data:  models.Presence{Username: username, Users: users},
	})
	log.Printf("%s joined room %s (%d/%d users)", username, code, users, config.RoomCapacity)
}

// Leave removes connID from its current room. Calling it for a connection
// with no room is a no-op: a disconnect racing an explicit leave must not
// fail, and the caller cannot tell "already left" from "never joined".
func (h *Hub) Leave(connID string, explicit bool) {
	code, ok := h.connRoom[connID]
	if !ok {
		return
	}
	delete(h.connRoom, connID)

	room, ok := h.Registry.Get(code)
	if !ok {
		return
	}

	p, ok := room.Participants[connID]
	if !ok {
		return
	}
	delete(room.Participants, connID)

	if len(room.Participants) == 0 {
		// Empty rooms go immediately; the reaper is only a backstop.
		h.Registry.Delete(code)
		log.Printf("Room %s deleted (empty)", code)
		return
	}

	h.broadcast(room, connID, models.ServerEvent{
		Event: models.EventUserLeft,
		Data:  models.Presence{Username: p.Username, Users: len(room.Participants)},
	})
	if explicit {
		log.Printf("%s left room %s (%d remaining)", p.Username, code, len(room.Participants))
	} else {
		log.Printf("%s disconnected from room %s (%d remaining)", p.Username, code, len(room.Participants))
	}
}

// disconnect handles an unregistered client: implicit leave, then drop the
// client and close its outbound channel. Idempotent against a client that
// already unregistered.
func (h *Hub) disconnect(client Client) {
	connID := client.GetConnID()
	if _, ok := h.Clients[connID]; !ok {
		return
	}
	h.Leave(connID, false)
	delete(h.Clients, connID)
	client.Close()
	log.Printf("Client disconnected: %s (%d online)", connID, len(h.Clients))
}

// Summaries snapshots the registry through the run loop, so HTTP handlers
// never touch hub state concurrently. Requires Run to be running.
func (h *Hub) Summaries() []models.RoomSummary {
	reply := make(chan []models.RoomSummary, 1)
	h.statsCh <- reply
	return <-reply
}

// emit sends one event to one client without blocking the loop.
func (h *Hub) emit(client Client, ev models.ServerEvent) {
	select {
	case client.GetSendChannel() <- ev:
	default:
		// Slow consumer; drop the event rather than stall everyone else.
	}
}

// broadcast sends ev to every participant of room except exclude.
func (h *Hub) broadcast(room *Room, exclude string, ev models.ServerEvent) {
	for id := range room.Participants {
		if id == exclude {
			continue
		}
		if client, ok := h.Clients[id]; ok {
			h.emit(client, ev)
		}
	}
}
