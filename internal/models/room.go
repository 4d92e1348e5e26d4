package models

import "time"

// RoomSummary is the monitoring view of a live room, exposed by /stats.
type RoomSummary struct {
	Code      string    `json:"code"`
	Users     int       `json:"users"`
	Messages  int       `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}
