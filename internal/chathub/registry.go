package chathub

import (
	"strings"
	"time"

	"pairchat/backend/internal/config"
	"pairchat/backend/internal/models"
)

// Participant is one side of a room, keyed by connection ID in
// Room.Participants.
type Participant struct {
	Username string
	JoinedAt time.Time
}

// Room is a capacity-2 pairing session. Rooms exist only in the Registry and
// only while someone is in them; nothing about a room survives the process.
type Room struct {
	Code         string
	Participants map[string]Participant
	History      []models.Message
	CreatedAt    time.Time
}

// AppendHistory adds a message to the bounded history, evicting the oldest
// entries once the limit is exceeded.
func (r *Room) AppendHistory(msg models.Message) {
	r.History = append(r.History, msg)
	if n := len(r.History); n > config.HistoryLimit {
		r.History = r.History[n-config.HistoryLimit:]
	}
}

// NormalizeCode maps case variants of a room code onto a single registry key.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Registry is the process-wide map of live rooms. It is not safe for
// concurrent use by contract; the hub's run loop is its only caller.
type Registry struct {
	rooms map[string]*Room
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room for code, lazily creating an empty one on
// first use. Code must already be normalized.
func (reg *Registry) GetOrCreate(code string) *Room {
	room, ok := reg.rooms[code]
	if !ok {
		room = &Room{
			Code:         code,
			Participants: make(map[string]Participant),
			CreatedAt:    time.Now(),
		}
		reg.rooms[code] = room
	}
	return room
}

// Get looks up a room without creating it.
func (reg *Registry) Get(code string) (*Room, bool) {
	room, ok := reg.rooms[code]
	return room, ok
}

// Delete removes a room. Deleting an absent code is a no-op.
func (reg *Registry) Delete(code string) {
	delete(reg.rooms, code)
}

// Len returns the number of live rooms.
func (reg *Registry) Len() int {
	return len(reg.rooms)
}

// List returns monitoring summaries for every live room.
func (reg *Registry) List() []models.RoomSummary {
	out := make([]models.RoomSummary, 0, len(reg.rooms))
	for code, room := range reg.rooms {
		out = append(out, models.RoomSummary{
			Code:      code,
			Users:     len(room.Participants),
			Messages:  len(room.History),
			CreatedAt: room.CreatedAt,
		})
	}
	return out
}

// Sweep deletes rooms that are empty and older than maxAge, returning how
// many were removed. Emptied rooms are normally deleted synchronously on last
// leave; Sweep is the reaper's backstop for anything that slipped through.
func (reg *Registry) Sweep(now time.Time, maxAge time.Duration) int {
	removed := 0
	for code, room := range reg.rooms {
		if len(room.Participants) == 0 && now.Sub(room.CreatedAt) > maxAge {
			delete(reg.rooms, code)
			removed++
		}
	}
	return removed
}
