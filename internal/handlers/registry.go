package handlers

import (
	"aegis_backend/internal/middleware"
	"aegis_backend/internal/services"
	"aegis_backend/internal/validator"
)

// AppHandlers собирает все HTTP-обработчики приложения
type AppHandlers struct {
	Auth        *AuthHandler
	Service     *ServiceHandler
	Booking     *BookingHandler
	Appointment *AppointmentHandler
	Lead        *LeadHandler
}

func NewAppHandlers(container *services.ServiceContainer, guard *middleware.AuthGuard, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, container.AuthService, guard),
		Service:     NewServiceHandler(base, container.CatalogService, guard),
		Booking:     NewBookingHandler(base, container.BookingService, guard),
		Appointment: NewAppointmentHandler(base, container.AppointmentService, guard),
		Lead:        NewLeadHandler(base, container.LeadService, guard),
	}
}
