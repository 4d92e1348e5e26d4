package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pairchat/backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW", "")

	cfg := config.Load()

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW", "https://chat.example.com, https://staging.example.com ,")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"https://chat.example.com", "https://staging.example.com"}, cfg.CORSAllow)
}
