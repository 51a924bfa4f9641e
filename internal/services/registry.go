package services

import "aegis_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	CatalogService     CatalogService
	BookingService     BookingService
	AppointmentService AppointmentService
	LeadService        LeadService
	EmailService       email.Provider
}
