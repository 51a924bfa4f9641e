package models

import "time"

type Booking struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;not null;index" json:"user_id"`
	ServiceID   string        `gorm:"type:uuid;not null" json:"service_id"`
	BookingDate time.Time     `gorm:"not null" json:"booking_date"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
