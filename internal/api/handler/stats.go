package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats exposes per-room monitoring counters. The snapshot goes through the
// hub's run loop, so it never races a join or leave.
func (h *Handler) Stats(c *gin.Context) {
	rooms := h.Hub.Summaries()
	c.JSON(http.StatusOK, gin.H{
		"totalRooms": len(rooms),
		"rooms":      rooms,
	})
}
