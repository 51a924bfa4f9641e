package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Хеш не равен исходному паролю и проверяется обратно
	assert.NotEqual(t, "super_password123", hash)
	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("super_password123")
	require.NoError(t, err)
	second, err := HashPassword("super_password123")
	require.NoError(t, err)

	// bcrypt солит каждый хеш, одинаковые пароли дают разные хеши
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHash_BrokenHash(t *testing.T) {
	// Битый хеш - это отказ, а не паника и не ошибка
	assert.False(t, CheckPasswordHash("super_password123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("super_password123", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a perfectly fine passphrase"))
}
