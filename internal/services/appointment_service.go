package services

import (
	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"
)

type AppointmentService interface {
	ListForUser(userID string) ([]models.Appointment, error)
	ListAll(limit, offset int) ([]models.Appointment, error)
	Get(id string) (*models.Appointment, error)
	Create(userID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(id string, status models.AppointmentStatus) error
}

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepository
}

func NewAppointmentService(appointmentRepo repositories.AppointmentRepository) AppointmentService {
	return &AppointmentServiceImpl{appointmentRepo: appointmentRepo}
}

func (s *AppointmentServiceImpl) ListForUser(userID string) ([]models.Appointment, error) {
	appointments, err := s.appointmentRepo.FindByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return appointments, nil
}

func (s *AppointmentServiceImpl) ListAll(limit, offset int) ([]models.Appointment, error) {
	appointments, err := s.appointmentRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return appointments, nil
}

func (s *AppointmentServiceImpl) Get(id string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, appErrors.ErrAppointmentNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) Create(userID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	appointment := &models.Appointment{
		UserID:          userID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		ServiceTitle:    req.ServiceTitle,
		ServiceDuration: req.ServiceDuration,
		ServicePrice:    req.ServicePrice,
		Notes:           req.Notes,
		Status:          models.AppointmentStatusPending,
	}

	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) UpdateStatus(id string, status models.AppointmentStatus) error {
	if err := s.appointmentRepo.UpdateStatus(id, status); err != nil {
		if appErrors.Is(err, repositories.ErrAppointmentNotFound) {
			return appErrors.ErrAppointmentNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
