package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pairchat/backend/internal/roomcode"
)

// NewRoomCode mints a room code for clients that want a server-suggested one.
// The code is not reserved; the room comes into being when someone joins it.
func (h *Handler) NewRoomCode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roomCode": roomcode.Generate()})
}
