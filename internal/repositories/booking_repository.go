package repositories

import (
	"errors"

	"aegis_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	FindByID(id string) (*models.Booking, error)
	FindByUserID(userID string) ([]models.Booking, error)
	FindAll(limit, offset int) ([]models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(id string, status models.BookingStatus) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Service").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByUserID(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Service").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindAll(limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Service").
		Order("booking_date DESC").
		Limit(limit).Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) UpdateStatus(id string, status models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
