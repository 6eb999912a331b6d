package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.DaysStale)
	assert.Equal(t, 7, cfg.DaysHardDrop)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PAZARMETRE_ADMIN", "baska-sifre")
	t.Setenv("DAYS_STALE", "5")
	t.Setenv("DAYS_HARD_DROP", "14")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "baska-sifre", cfg.AdminPassword)
	assert.Equal(t, 5, cfg.DaysStale)
	assert.Equal(t, 14, cfg.DaysHardDrop)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DAYS_STALE", "iki")
	t.Setenv("DAYS_HARD_DROP", "-3")

	cfg := Load()

	assert.Equal(t, 2, cfg.DaysStale)
	assert.Equal(t, 7, cfg.DaysHardDrop)
}
