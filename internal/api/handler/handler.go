package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"pairchat/backend/internal/chathub"
	"pairchat/backend/internal/config"
)

// Handler carries the hub reference shared by all routes.
type Handler struct {
	Hub      *chathub.Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *chathub.Hub, cfg *config.Config) *Handler {
	allowed := make(map[string]bool, len(cfg.CORSAllow))
	for _, origin := range cfg.CORSAllow {
		allowed[origin] = true
	}

	return &Handler{
		Hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Non-browser clients send no Origin header.
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}
