package services

import (
	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"
)

type BookingService interface {
	ListForUser(userID string) ([]models.Booking, error)
	ListAll(limit, offset int) ([]models.Booking, error)
	GetForUser(id, userID string) (*models.Booking, error)
	Create(userID string, req *dto.CreateBookingRequest) (*models.Booking, error)
	Cancel(id, userID string) error
	UpdateStatus(id string, status models.BookingStatus) error
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
	}
}

func (s *BookingServiceImpl) ListForUser(userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) ListAll(limit, offset int) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return bookings, nil
}

// GetForUser возвращает бронирование только его владельцу
func (s *BookingServiceImpl) GetForUser(id, userID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, appErrors.ErrBookingNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if booking.UserID != userID {
		return nil, appErrors.ErrNotOwner
	}
	return booking, nil
}

// Create создает бронирование после проверки, что услуга существует
func (s *BookingServiceImpl) Create(userID string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	service, err := s.serviceRepo.FindByID(req.ServiceID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, appErrors.ErrServiceNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	booking := &models.Booking{
		UserID:      userID,
		ServiceID:   service.ID,
		BookingDate: req.BookingDate,
		Notes:       req.Notes,
		Status:      models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, appErrors.InternalError(err)
	}
	booking.Service = service
	return booking, nil
}

// Cancel переводит бронирование владельца в статус cancelled
func (s *BookingServiceImpl) Cancel(id, userID string) error {
	if _, err := s.GetForUser(id, userID); err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateStatus(id, models.BookingStatusCancelled); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// UpdateStatus - административная смена статуса
func (s *BookingServiceImpl) UpdateStatus(id string, status models.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(id, status); err != nil {
		if appErrors.Is(err, repositories.ErrBookingNotFound) {
			return appErrors.ErrBookingNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
