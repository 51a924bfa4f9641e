package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateResetToken генерирует криптографически случайный токен
// для восстановления пароля (256 бит энтропии, hex)
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
