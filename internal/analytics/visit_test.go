package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashWithSalt(t *testing.T) {
	h1 := HashWithSalt("192.168.1.10", "tuz")
	h2 := HashWithSalt("192.168.1.10", "tuz")
	h3 := HashWithSalt("192.168.1.10", "başka-tuz")
	h4 := HashWithSalt("192.168.1.11", "tuz")

	assert.Equal(t, h1, h2, "aynı girdi + aynı tuz deterministik olmalı")
	assert.NotEqual(t, h1, h3, "tuz değişince hash değişmeli")
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 64) // sha256 hex
}

func TestSkipPath(t *testing.T) {
	assert.True(t, skipPath("/healthz"))
	assert.True(t, skipPath("/metrics"))
	assert.True(t, skipPath("/static/logo.png"))
	assert.True(t, skipPath("/favicon.ico"))
	assert.False(t, skipPath("/"))
	assert.False(t, skipPath("/api/vitrin"))
}
