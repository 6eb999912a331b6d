package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "cok-gizli-test-anahtari-32-karakter!"

	token, err := GenerateToken(secret, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.BusinessID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("dogru-anahtar", 7)
	require.NoError(t, err)

	_, err = ParseToken("yanlis-anahtar", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("anahtar", "bu-bir-jwt-degil")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli123", hash)

	assert.True(t, VerifyPassword("gizli123", hash))
	assert.False(t, VerifyPassword("gizli124", hash))
}
