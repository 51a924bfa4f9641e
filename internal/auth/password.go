package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Стоимость bcrypt фиксирована, чтобы перебор хешей оставался дорогим
const bcryptCost = 12

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// На битом хеше возвращает false, а не ошибку.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword проверяет минимальную сложность пароля
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}
