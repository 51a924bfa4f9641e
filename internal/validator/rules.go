package validator

import (
	"log"

	"aegis_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации,
// основанные на enum-типах из models/statuses.go
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("service_category", func(fl validator.FieldLevel) bool {
		switch models.ServiceCategory(fl.Field().String()) {
		case models.ServiceCategoryAudit,
			models.ServiceCategoryConsultation,
			models.ServiceCategoryTraining,
			models.ServiceCategoryImplementation,
			models.ServiceCategoryOther:
			return true
		}
		return false
	})

	mustRegister("booking_status", func(fl validator.FieldLevel) bool {
		switch models.BookingStatus(fl.Field().String()) {
		case models.BookingStatusPending,
			models.BookingStatusConfirmed,
			models.BookingStatusCompleted,
			models.BookingStatusCancelled:
			return true
		}
		return false
	})

	mustRegister("appointment_status", func(fl validator.FieldLevel) bool {
		switch models.AppointmentStatus(fl.Field().String()) {
		case models.AppointmentStatusPending,
			models.AppointmentStatusConfirmed,
			models.AppointmentStatusCompleted,
			models.AppointmentStatusCancelled:
			return true
		}
		return false
	})

	mustRegister("lead_status", func(fl validator.FieldLevel) bool {
		switch models.LeadStatus(fl.Field().String()) {
		case models.LeadStatusNew,
			models.LeadStatusInProgress,
			models.LeadStatusResolved,
			models.LeadStatusClosed:
			return true
		}
		return false
	})
}
