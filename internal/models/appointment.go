package models

import "time"

// Appointment - заявка на встречу; данные услуги копируются в запись,
// чтобы изменение каталога не меняло уже созданные заявки
type Appointment struct {
	BaseModel
	UserID          string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string            `gorm:"not null" json:"name"`
	Email           string            `gorm:"not null" json:"email"`
	Phone           string            `gorm:"not null" json:"phone"`
	Date            time.Time         `gorm:"not null" json:"date"`
	Time            string            `gorm:"not null" json:"time"`
	ServiceTitle    string            `gorm:"not null" json:"service_title"`
	ServiceDuration string            `gorm:"not null" json:"service_duration"`
	ServicePrice    string            `gorm:"not null" json:"service_price"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
