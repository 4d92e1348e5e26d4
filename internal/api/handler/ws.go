package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pairchat/backend/internal/chathub"
	"pairchat/backend/internal/config"
	"pairchat/backend/internal/models"
)

// ServeWebSocket upgrades the HTTP connection and hands it to the hub.
// Every connection gets a fresh transient identity; nothing outlives the
// socket.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		ID:   uuid.New().String(),
		Conn: conn,
		Hub:  h.Hub,
		Send: make(chan models.ServerEvent, config.SendBufferSize),
	}

	// Register the client with the hub, then start its pumps
	h.Hub.RegisterCh <- client
	client.Run()
}
