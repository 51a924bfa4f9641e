package dto

import "time"

type CreateBookingRequest struct {
	ServiceID   string    `json:"service_id" binding:"required" validate:"required,uuid"`
	BookingDate time.Time `json:"booking_date" binding:"required" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,booking_status"`
}

type CreateAppointmentRequest struct {
	Name            string    `json:"name" binding:"required" validate:"required,min=2,max=50"`
	Email           string    `json:"email" binding:"required" validate:"required,email"`
	Phone           string    `json:"phone" binding:"required" validate:"required"`
	Date            time.Time `json:"date" binding:"required" validate:"required"`
	Time            string    `json:"time" binding:"required" validate:"required"`
	ServiceTitle    string    `json:"service_title" binding:"required" validate:"required"`
	ServiceDuration string    `json:"service_duration" binding:"required" validate:"required"`
	ServicePrice    string    `json:"service_price" binding:"required" validate:"required"`
	Notes           string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,appointment_status"`
}
