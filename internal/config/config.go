package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Room
	RoomCapacity   = 2
	HistoryLimit   = 100
	RoomCodeLength = 6

	// Reaper
	ReapInterval = 30 * time.Minute
	StaleRoomAge = time.Hour

	// WebSocket
	SendBufferSize = 256
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Addr      string
	CORSAllow []string
}

// Load reads configuration from environment variables. A .env file is loaded
// first if present (for development).
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr: ":" + getEnv("PORT", "3001"),
	}
	cfg.CORSAllow = splitCSV(getEnv("CORS_ALLOW", "http://localhost:3000,http://localhost:5173"))
	return cfg
}

// getEnv returns the env var or a default.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitCSV trims and filters a comma-separated list.
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
