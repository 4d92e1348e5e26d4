package chathub

import (
	"log"
	"time"

	"pairchat/backend/internal/config"
)

// Reaper periodically asks the hub to sweep rooms that were somehow left
// empty without being deleted. Last-leave deletion is the primary cleanup;
// the reaper only matters if a code path ever removes a participant without
// deleting the emptied room.
type Reaper struct {
	Hub      *Hub
	Interval time.Duration
	MaxAge   time.Duration
}

// NewReaper creates a reaper with the default period and staleness threshold.
func NewReaper(hub *Hub) *Reaper {
	return &Reaper{
		Hub:      hub,
		Interval: config.ReapInterval,
		MaxAge:   config.StaleRoomAge,
	}
}

// Run ticks forever. The sweep itself executes inside the hub's run loop, so
// it is serialized with joins and leaves like every other mutation.
func (r *Reaper) Run() {
	log.Println("Reaper started.")
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for range ticker.C {
		r.Hub.SweepCh <- r.MaxAge
	}
}
