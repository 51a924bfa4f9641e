package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.GenerateToken("user-1", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.GenerateToken("user-1", "user", -time.Minute)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	// Истекший токен отличим от битого
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one")
	verifier := NewTokenManager("secret-two")

	token, err := issuer.GenerateToken("user-1", "user", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret")

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := m.ParseToken(tokenStr)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token: %q", tokenStr)
	}
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	second, err := GenerateResetToken()
	require.NoError(t, err)

	// 32 байта в hex - 64 символа
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
