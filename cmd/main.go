package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pairchat/backend/internal/api/handler"
	"pairchat/backend/internal/chathub"
	"pairchat/backend/internal/config"
)

func main() {
	log.Println("Starting PairChat Backend...")

	cfg := config.Load()

	// 1. Core: registry + hub + reaper
	registry := chathub.NewRegistry()
	hub := chathub.NewHub(registry)
	reaper := chathub.NewReaper(hub)

	go hub.Run()    // main dispatcher
	go reaper.Run() // stale room sweep

	// 2. Gin routing
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllow,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	h := handler.NewHandler(hub, cfg)

	r.GET("/", h.Health)             // health + active room count
	r.GET("/stats", h.Stats)         // per-room counters
	r.GET("/newcode", h.NewRoomCode) // server-suggested room code
	r.GET("/ws", h.ServeWebSocket)   // WebSocket upgrade

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// 3. Graceful shutdown. Room state is in-memory only and is meant to be
	// lost; we just stop accepting connections and drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
