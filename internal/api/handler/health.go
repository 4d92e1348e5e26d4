package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health reports liveness plus the number of active rooms.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Privacy-first chat server is running",
		"activeRooms": len(h.Hub.Summaries()),
		"uptime":      time.Since(startedAt).Round(time.Second).String(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
