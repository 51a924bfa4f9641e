package models

import "time"

type User struct {
	BaseModel
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	PasswordChangedAt *time.Time `json:"-"`
	Role              UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	FailedLoginCount  int        `gorm:"not null;default:0" json:"-"`
	LockedUntil       *time.Time `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExp     *time.Time `json:"-"`
}

// IsLocked сообщает, действует ли сейчас блокировка после неудачных входов
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// PasswordChangedAfter проверяет, менялся ли пароль после выдачи токена.
// Токены, выданные до смены пароля, считаются недействительными.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	// Сравнение с точностью до секунды - iat в JWT хранится в секундах
	return !u.PasswordChangedAt.Truncate(time.Second).Before(issuedAt.Truncate(time.Second))
}
